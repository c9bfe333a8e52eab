package values

import "fmt"

// Language is the display language declared on a profile. It is carried
// for presentation only and never influences evaluation.
type Language string

const (
	LangEnglish   Language = "English"
	LangHindi     Language = "Hindi"
	LangPunjabi   Language = "Punjabi"
	LangTamil     Language = "Tamil"
	LangTelugu    Language = "Telugu"
	LangMarathi   Language = "Marathi"
	LangBengali   Language = "Bengali"
	LangKannada   Language = "Kannada"
	LangGujarati  Language = "Gujarati"
	LangMalayalam Language = "Malayalam"
	LangUrdu      Language = "Urdu"
)

// Validate returns an error if the language value is invalid
func (l Language) Validate() error {
	switch l {
	case LangEnglish, LangHindi, LangPunjabi, LangTamil, LangTelugu,
		LangMarathi, LangBengali, LangKannada, LangGujarati, LangMalayalam, LangUrdu:
		return nil
	default:
		return fmt.Errorf("invalid language: %s", l)
	}
}

// String returns the string representation
func (l Language) String() string {
	return string(l)
}
