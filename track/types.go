// Package track provides the handler registry, track-info record,
// and disk container shared by every track-format handler.
package track

// Type identifies a track format.
type Type int

const (
	TypeUnknown Type = iota
	TypeBehindTheIronGate
	TypeZaZelaznaBrama
	TypeZaZelaznaBramaBoot
	TypeABCChemiiA
	TypeABCChemiiB
	TypeABCChemiiTimsoftA
	TypeABCChemiiTimsoftB
	TypeInferior
	TypeCopylock
	TypeCopylockOld
	TypeAmigaDOS
)

func (t Type) String() string {
	switch t {
	case TypeBehindTheIronGate:
		return "behind_the_iron_gate"
	case TypeZaZelaznaBrama:
		return "za_zelazna_brama"
	case TypeZaZelaznaBramaBoot:
		return "za_zelazna_brama_boot"
	case TypeABCChemiiA:
		return "abc_chemii_a"
	case TypeABCChemiiB:
		return "abc_chemii_b"
	case TypeABCChemiiTimsoftA:
		return "abc_chemii_timsoft_a"
	case TypeABCChemiiTimsoftB:
		return "abc_chemii_timsoft_b"
	case TypeInferior:
		return "inferior"
	case TypeCopylock:
		return "copylock"
	case TypeCopylockOld:
		return "copylock_old"
	case TypeAmigaDOS:
		return "amigados"
	default:
		return "unknown"
	}
}
