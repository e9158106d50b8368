package libdiff

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) Prefix() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}
