// Package models defines the persistent entities and their closed enums.
package models

// Program is the training program a cohort teaches
type Program string

const (
	ProgramWebDev        Program = "Web Dev"
	ProgramUXUI          Program = "UX/UI"
	ProgramDataAnalytics Program = "Data Analytics"
	ProgramCybersecurity Program = "Cybersecurity"
)

// IsValid reports whether the value is one of the known programs
func (p Program) IsValid() bool {
	switch p {
	case ProgramWebDev, ProgramUXUI, ProgramDataAnalytics, ProgramCybersecurity:
		return true
	}
	return false
}

// Format is the cohort schedule format
type Format string

const (
	FormatFullTime Format = "Full Time"
	FormatPartTime Format = "Part Time"
)

// IsValid reports whether the value is one of the known formats
func (f Format) IsValid() bool {
	switch f {
	case FormatFullTime, FormatPartTime:
		return true
	}
	return false
}

// Campus is the city a cohort runs in, or Remote
type Campus string

const (
	CampusMadrid     Campus = "Madrid"
	CampusBarcelona  Campus = "Barcelona"
	CampusMiami      Campus = "Miami"
	CampusParis      Campus = "Paris"
	CampusBerlin     Campus = "Berlin"
	CampusAmsterdam  Campus = "Amsterdam"
	CampusMexicoCity Campus = "Mexico City"
	CampusLisbon     Campus = "Lisbon"
	CampusRemote     Campus = "Remote"
)

// IsValid reports whether the value is one of the known campuses
func (c Campus) IsValid() bool {
	switch c {
	case CampusMadrid, CampusBarcelona, CampusMiami, CampusParis,
		CampusBerlin, CampusAmsterdam, CampusMexicoCity, CampusLisbon, CampusRemote:
		return true
	}
	return false
}

// Language is a spoken language a student lists
type Language string

const (
	LanguageEnglish    Language = "English"
	LanguageSpanish    Language = "Spanish"
	LanguageFrench     Language = "French"
	LanguageGerman     Language = "German"
	LanguagePortuguese Language = "Portuguese"
	LanguageDutch      Language = "Dutch"
	LanguageOther      Language = "Other"
)

// IsValid reports whether the value is one of the known languages
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageSpanish, LanguageFrench, LanguageGerman,
		LanguagePortuguese, LanguageDutch, LanguageOther:
		return true
	}
	return false
}
