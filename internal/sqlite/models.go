package sqlite

type record struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}
