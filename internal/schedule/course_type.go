package schedule

// CourseType classifies a session from the abbreviation embedded in its title
// or type label.
type CourseType int

const (
	TypeUnknown CourseType = iota
	TypeLecture            // CM
	TypeTutorial           // TD
	TypePracticalGroup     // TPG
	TypePractical          // TP
)

func (t CourseType) String() string {
	switch t {
	case TypeLecture:
		return "CM"
	case TypeTutorial:
		return "TD"
	case TypePracticalGroup:
		return "TPG"
	case TypePractical:
		return "TP"
	default:
		return "?"
	}
}
