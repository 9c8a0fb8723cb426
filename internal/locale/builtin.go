package locale

import "golang.org/x/text/language"

var builtin = map[language.Tag]map[string]string{
	language.German: {
		"Yes":             "Ja",
		"No":              "Nein",
		"Description":     "Beschreibung",
		"Author":          "Autor",
		"Todo":            "Offen",
		"Source File":     "Quelldatei",
		"Type":            "Typ",
		"Value":           "Wert",
		"Size":            "Größe",
		"Extends":         "Erweitert",
		"Constant":        "Konstante",
		"Array":           "Feld",
		"Private":         "Privat",
		"Public":          "Öffentlich",
		"Static":          "Statisch",
		"Delegate":        "Delegat",
		"Container":       "Container",
		"Owner":           "Besitzer",
		"Ordinal":         "Position",
		"Return Type":     "Rückgabetyp",
		"Native":          "Nativ",
		"Stub":            "Stub",
		"Operator":        "Operator",
		"Default Return":  "Standardrückgabe",
		"Module":          "Modul",
		"Optional":        "Optional",
		"Function":        "Funktion",
		"Hook Function":   "Hook-Funktion",
		"Target":          "Ziel",
		"Parameters":      "Parameter",
		"Locals":          "Lokale Variablen",
		"Members":         "Elemente",
		"Methods":         "Methoden",
		"Implementations": "Implementierungen",
		"Ancestors":       "Vorfahren",
		"Child Structs":   "Abgeleitete Strukturen",
		"Once":            "Einmalig",
		"Text Macro":      "Textmakro",
		"Arguments":       "Argumente",
	},
}
