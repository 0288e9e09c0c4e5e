// Package strcase is the case-normalization collaborator: it converts
// hyphenated, underscored, spaced, or dotted member names to camel form and
// synthesizes the conventional getX/setX shorthand names used when a member
// is installed in getter/setter mode.
package strcase
