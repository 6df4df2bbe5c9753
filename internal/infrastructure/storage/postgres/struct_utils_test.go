package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nautica/internal/domain/folio"
	"nautica/internal/domain/reservation"
)

type taggedBase struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

type taggedEntity struct {
	taggedBase
	Name    string  `db:"name"`
	Notes   *string `db:"notes"`
	Skipped string  `db:"-"`
	NoTag   string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[taggedEntity]()

	assert.ElementsMatch(t, []string{"id", "created_at", "name", "notes"}, cols)
}

func TestExtractDBColumns_FolioEntity(t *testing.T) {
	cols := ExtractDBColumns[folio.Folio]()

	for _, expected := range []string{"id", "year", "number", "folio", "created_at"} {
		assert.Contains(t, cols, expected)
	}
}

func TestStructToMap(t *testing.T) {
	notes := "vip customer"
	e := taggedEntity{
		taggedBase: taggedBase{ID: 7, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		Name:       "Sea Breeze",
		Notes:      &notes,
		Skipped:    "never",
		NoTag:      "never",
	}

	m := StructToMap(e)

	assert.Equal(t, int64(7), m["id"])
	assert.Equal(t, "Sea Breeze", m["name"])
	assert.Equal(t, &notes, m["notes"])
	assert.NotContains(t, m, "-")
	assert.Len(t, m, 4)
}

func TestStructToMap_PointerInput(t *testing.T) {
	r := reservation.Reservation{ID: 3, FirstName: "Ana", Type: reservation.ProductYacht}

	m := StructToMap(&r)

	assert.Equal(t, int64(3), m["id"])
	assert.Equal(t, "Ana", m["first_name"])
	assert.Equal(t, reservation.ProductYacht, m["type"])
}
