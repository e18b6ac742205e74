package registry

// Kind identifies one of the three record types held by the registry.
type Kind string

const (
	KindNaturalPerson Kind = "natural_person"
	KindLegalEntity   Kind = "legal_entity"
	KindGood          Kind = "good"
)

// Label is the human readable name used in messages
func (k Kind) Label() string {
	switch k {
	case KindNaturalPerson:
		return "natural person"
	case KindLegalEntity:
		return "legal entity"
	case KindGood:
		return "good"
	default:
		return string(k)
	}
}

// String implements fmt.Stringer
func (k Kind) String() string {
	return string(k)
}
