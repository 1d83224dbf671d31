// Package convention renders word sequences under a naming convention.
//
// Five conventions are supported:
//
//   - [CamelCase]: myVariableName
//   - [PascalCase]: MyVariableName
//   - [SnakeCase]: my_variable_name
//   - [KebabCase]: my-variable-name
//   - [ScreamingSnakeCase]: MY_VARIABLE_NAME
//
// Capitalization always uppercases the first letter and lowercases the rest of a
// word, so acronyms are not preserved: the words ["xml", "parser"] render as
// "XmlParser" in PascalCase, never "XMLParser".
//
// The package also carries the default convention for common languages
// ([ForLanguage]) as a [LanguageTable] that configuration can extend.
package convention
