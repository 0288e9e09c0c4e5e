package chain

// Configuration keys form a closed enumeration: every slot a spec can
// occupy in its ordered store is named here and resolved at compile time.
// The store holds at most one value per key; later writes overwrite.
const (
	// KeyNames holds the accumulated []string of target member names.
	KeyNames = "names"
	// KeyType holds the *schema.Type validator descriptor.
	KeyType = "type"
	// KeyEncase holds the resolved encase mode: a CallFunc or true.
	KeyEncase = "encase"
	// KeyOnGet, KeyOnSet, and KeyOnCall hold handler values. Defaulted
	// handlers are tagged so composition can tell fallback wiring from
	// explicit overrides.
	KeyOnGet  = "onGet"
	KeyOnSet  = "onSet"
	KeyOnCall = "onCall"
	// KeyInitial holds the value written to the parent store at
	// synthesis time, before any call occurs.
	KeyInitial = "initial"
	// KeyDefault holds the fallback value default getters return when
	// the parent store has no entry under the member name.
	KeyDefault = "default"
	// KeyBind holds the receiver the composed method is bound to.
	KeyBind = "bind"
	// KeyReturns and KeyCallReturns configure the return transform.
	KeyReturns     = "returns"
	KeyCallReturns = "callReturns"
	// KeyAlias holds the []string of additional names that receive the
	// primary name's final descriptor.
	KeyAlias = "alias"
	// KeyFactories holds the []FactoryFunc queue run once per name
	// during synthesis.
	KeyFactories = "factories"
	// KeyDefine and KeyGetSet toggle value vs accessor installation.
	KeyDefine = "define"
	KeyGetSet = "getSet"
	// KeyDecorationTarget holds the Host the descriptors install onto
	// when it differs from the owning parent.
	KeyDecorationTarget = "decorationTarget"
	// KeyCamelCase marks that installed names are camel-cased first.
	KeyCamelCase = "camelCase"
	// KeyOnValid and KeyOnInvalid hold validation outcome callbacks.
	KeyOnValid   = "onValid"
	KeyOnInvalid = "onInvalid"
)
