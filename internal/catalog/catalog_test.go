package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldKey(t *testing.T) {
	cases := []struct {
		typeName string
		expected string
	}{
		{"Personal Data Sheet", "personal_data_sheet"},
		{"Transcript of Records", "transcript_of_records"},
		{"CS Form No. 9 Annex P", "cs_form_no_9_annex_p"},
		{"Application Letter", "application_letter"},
		{"  Leading & Trailing!  ", "leading_trailing"},
		{"already_snake", "already_snake"},
		{"!!!", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, FieldKey(c.typeName), "type name %q", c.typeName)
	}
}

func TestNewStaticCatalog(t *testing.T) {
	t.Run("Builds Requirements In Order", func(t *testing.T) {
		cat, err := NewStaticCatalog([]Entry{
			{TypeName: "Personal Data Sheet", Extensions: []string{"PDF"}, MaxSizeBytes: 15 << 20},
			{TypeName: "Application Letter", Extensions: []string{".pdf", "docx"}, MaxSizeBytes: 15 << 20},
		})
		assert.NoError(t, err)

		reqs, err := cat.Requirements(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, reqs, 2)
		assert.Equal(t, "personal_data_sheet", reqs[0].FieldKey)
		assert.Equal(t, []string{"pdf"}, reqs[0].AcceptedExtensions)
		assert.Equal(t, "application_letter", reqs[1].FieldKey)
		assert.Equal(t, []string{"pdf", "docx"}, reqs[1].AcceptedExtensions)
	})

	t.Run("Rejects Duplicate Field Keys", func(t *testing.T) {
		_, err := NewStaticCatalog([]Entry{
			{TypeName: "Personal Data Sheet", Extensions: []string{"pdf"}, MaxSizeBytes: 1},
			{TypeName: "personal-data-sheet", Extensions: []string{"pdf"}, MaxSizeBytes: 1},
		})
		assert.Error(t, err)
	})

	t.Run("Rejects Empty Entry List", func(t *testing.T) {
		_, err := NewStaticCatalog(nil)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("Rejects Blank Type Name", func(t *testing.T) {
		_, err := NewStaticCatalog([]Entry{{TypeName: "..."}})
		assert.Error(t, err)
	})
}

func TestDocumentRequirementAccepts(t *testing.T) {
	req := DocumentRequirement{AcceptedExtensions: []string{"pdf"}}
	assert.True(t, req.Accepts("pdf"))
	assert.True(t, req.Accepts("PDF"))
	assert.True(t, req.Accepts(".pdf"))
	assert.False(t, req.Accepts("docx"))
	assert.False(t, req.Accepts(""))
}
