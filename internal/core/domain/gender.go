package domain

import "go.trai.ch/zerr"

// Gender is the server's GenderEnum.
type Gender string

const (
	GenderMale              Gender = "MALE"
	GenderFemale            Gender = "FEMALE"
	GenderTransgenderMale   Gender = "TRANSGENDER_MALE"
	GenderTransgenderFemale Gender = "TRANSGENDER_FEMALE"
	GenderIntersex          Gender = "INTERSEX"
)

type genderLabel struct {
	label  string
	gender Gender
}

// genderLabels is ordered; GenderStrings returns labels in this order.
var genderLabels = []genderLabel{
	{"Male", GenderMale},
	{"Female", GenderFemale},
	{"Transgender Male", GenderTransgenderMale},
	{"Transgender Female", GenderTransgenderFemale},
	{"Intersex", GenderIntersex},
}

// GenderToString returns the display label of g, or "" for an empty or unknown value.
func GenderToString(g Gender) string {
	if g == "" {
		return ""
	}
	for _, l := range genderLabels {
		if l.gender == g {
			return l.label
		}
	}
	return ""
}

// StringToGender maps a display label to its enum value. An empty label maps to the
// empty gender without error.
func StringToGender(label string) (Gender, error) {
	if label == "" {
		return "", nil
	}
	for _, l := range genderLabels {
		if l.label == label {
			return l.gender, nil
		}
	}
	return "", zerr.With(ErrUnknownGender, "label", label)
}

// GenderStrings returns every display label in a stable order.
func GenderStrings() []string {
	out := make([]string, len(genderLabels))
	for i, l := range genderLabels {
		out[i] = l.label
	}
	return out
}
