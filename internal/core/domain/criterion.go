package domain

// CriterionModifier is the server's CriterionModifier enum.
type CriterionModifier string

const (
	ModifierEquals    CriterionModifier = "EQUALS"
	ModifierNotEquals CriterionModifier = "NOT_EQUALS"
	ModifierIncludes  CriterionModifier = "INCLUDES"
	ModifierExcludes  CriterionModifier = "EXCLUDES"
	ModifierIsNull    CriterionModifier = "IS_NULL"
	ModifierNotNull   CriterionModifier = "NOT_NULL"
)

// CriterionType identifies a filter criterion in list filters.
type CriterionType string

// CriterionTypeGender is the gender criterion.
const CriterionTypeGender CriterionType = "gender"

// Criterion is one condition of a list filter.
type Criterion struct {
	Type          CriterionType
	ParameterName string
	Modifier      CriterionModifier
	// ModifierOptions is empty when the modifier is fixed.
	ModifierOptions []CriterionModifier
	Options         []string
	Value           string
}

// NewGenderCriterion returns an unset gender criterion. The modifier is fixed to
// equality and the options are the gender display labels.
func NewGenderCriterion() Criterion {
	return Criterion{
		Type:          CriterionTypeGender,
		ParameterName: "gender",
		Modifier:      ModifierEquals,
		Options:       GenderStrings(),
	}
}

// IsSet reports whether the criterion carries a value.
func (c Criterion) IsSet() bool {
	return c.Value != "" || c.Modifier == ModifierIsNull || c.Modifier == ModifierNotNull
}

// Parameter renders the criterion as the wire shape {value, modifier}. Gender values
// are translated from display label to enum.
func (c Criterion) Parameter() (map[string]any, error) {
	value := c.Value
	if c.Type == CriterionTypeGender {
		g, err := StringToGender(c.Value)
		if err != nil {
			return nil, err
		}
		value = string(g)
	}
	return map[string]any{
		"value":    value,
		"modifier": string(c.Modifier),
	}, nil
}
