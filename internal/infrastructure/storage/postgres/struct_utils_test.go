package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"insural/internal/core/entity"
	"insural/internal/core/id"
	"insural/internal/domain/feedback"
	"insural/internal/domain/user"
)

type taggedEntity struct {
	entity.Base
	Code     string `db:"code" json:"code"`
	Name     string `db:"name" json:"name"`
	Internal string `db:"-"`
	Untagged string
}

func TestExtractDBColumns_EmbeddedBase(t *testing.T) {
	cols := ExtractDBColumns[taggedEntity]()

	expected := []string{"id", "created_at", "updated_at", "code", "name"}
	assert.Equal(t, expected, cols)
	assert.NotContains(t, cols, "-")
}

func TestExtractDBColumns_PointerType(t *testing.T) {
	assert.Equal(t, ExtractDBColumns[taggedEntity](), ExtractDBColumns[*taggedEntity]())
}

func TestStructToMap_EmbeddedBase(t *testing.T) {
	e := taggedEntity{
		Base:     entity.NewBase(),
		Code:     "TEST",
		Name:     "Test Name",
		Internal: "never stored",
		Untagged: "never stored",
	}
	e.EnsureID()

	m := StructToMap(e)

	assert.Equal(t, e.ID, m["id"])
	assert.Equal(t, e.CreatedAt, m["created_at"])
	assert.Equal(t, e.UpdatedAt, m["updated_at"])
	assert.Equal(t, "TEST", m["code"])
	assert.Equal(t, "Test Name", m["name"])
	assert.Len(t, m, 5)
}

func TestStructToMap_Feedback(t *testing.T) {
	fb := feedback.New("Jordan", "jordan@example.com", "5550001111", "text")
	fb.IsPurchase = true
	fb.EnsureID()

	m := StructToMap(fb)

	assert.Equal(t, fb.ID, m["id"])
	assert.Equal(t, "jordan@example.com", m["email"])
	assert.Equal(t, true, m["is_purchase"])
}

func TestStructToMap_UserCarriesPasswordHashColumn(t *testing.T) {
	u := user.New("Sam", "sam@example.com", "")
	u.PasswordHash = "bcrypt-output"
	u.EnsureID()

	m := StructToMap(u)

	// The hash is hidden from JSON but must reach the database.
	assert.Equal(t, "bcrypt-output", m["password_hash"])
}

func TestUpdateSkipsIDColumn(t *testing.T) {
	// The update builder filters columns from selectCols minus "id"; this
	// guards the contract StructToMap relies on.
	cols := ExtractDBColumns[feedback.Feedback]()
	assert.Contains(t, cols, "id")

	e := feedback.New("A", "a@example.com", "5550001111", "x")
	e.EnsureID()
	m := StructToMap(e)
	assert.NotEqual(t, id.Nil(), m["id"])
}
