package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"jobportal-backend/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func testRequirements() []catalog.DocumentRequirement {
	cat, err := catalog.NewStaticCatalog([]catalog.Entry{
		{TypeName: "Personal Data Sheet", Extensions: []string{"pdf"}, MaxSizeBytes: 15 << 20},
		{TypeName: "Transcript of Records", Extensions: []string{"pdf"}, MaxSizeBytes: 15 << 20},
		{TypeName: "Certificate of Eligibility", Extensions: []string{"pdf"}, MaxSizeBytes: 15 << 20},
		{TypeName: "Work Experience Sheet", Extensions: []string{"pdf"}, MaxSizeBytes: 15 << 20},
		{TypeName: "Application Letter", Extensions: []string{"pdf"}, MaxSizeBytes: 15 << 20},
		{TypeName: "CS Form No. 9 Annex P", Extensions: []string{"pdf"}, MaxSizeBytes: 15 << 20},
	})
	if err != nil {
		panic(err)
	}
	reqs, _ := cat.Requirements(context.Background(), 0)
	return reqs
}

func testUpload(name string, size int64) *DocumentUpload {
	return &DocumentUpload{
		FileName: name,
		Size:     size,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("content")), nil
		},
	}
}

func validInput() *SubmissionInput {
	docs := make(map[string]*DocumentUpload)
	for _, req := range testRequirements() {
		docs[req.FieldKey] = testUpload("file.pdf", 1024)
	}
	return &SubmissionInput{
		FullName:    "Juan Dela Cruz",
		Email:       "juan@example.com",
		PhoneNumber: "09171234567",
		Address:     "123 Rizal St, Quezon City",
		Documents:   docs,
	}
}

func TestValidateSubmission(t *testing.T) {
	reqs := testRequirements()

	t.Run("Valid Submission Passes", func(t *testing.T) {
		errs := validateSubmission(validInput(), reqs)
		assert.Empty(t, errs)
	})

	t.Run("Oversized File Yields Single Size Error", func(t *testing.T) {
		input := validInput()
		input.Documents["personal_data_sheet"] = testUpload("pds.pdf", 16<<20)

		errs := validateSubmission(input, reqs)
		assert.Len(t, errs, 1)
		assert.Equal(t, FileSizeExceeded, errs[0].Kind)
		assert.Equal(t, "Personal Data Sheet", errs[0].Subject)
	})

	t.Run("Omitted Document Yields Missing Error", func(t *testing.T) {
		input := validInput()
		delete(input.Documents, "application_letter")

		errs := validateSubmission(input, reqs)
		assert.Len(t, errs, 1)
		assert.Equal(t, MissingDocument, errs[0].Kind)
		assert.Equal(t, "Application Letter", errs[0].Subject)
	})

	t.Run("Wrong Extension Yields Type Error", func(t *testing.T) {
		input := validInput()
		input.Documents["transcript_of_records"] = testUpload("tor.docx", 1024)

		errs := validateSubmission(input, reqs)
		assert.Len(t, errs, 1)
		assert.Equal(t, UnsupportedFileType, errs[0].Kind)
		assert.Equal(t, "Transcript of Records", errs[0].Subject)
	})

	t.Run("Empty Upload Counts As Missing", func(t *testing.T) {
		input := validInput()
		input.Documents["work_experience_sheet"] = testUpload("wes.pdf", 0)

		errs := validateSubmission(input, reqs)
		assert.Len(t, errs, 1)
		assert.Equal(t, MissingDocument, errs[0].Kind)
	})

	t.Run("Aggregates All Errors Without Short Circuit", func(t *testing.T) {
		input := validInput()
		input.FullName = "  "
		input.Email = "not-an-email"
		delete(input.Documents, "personal_data_sheet")
		input.Documents["application_letter"] = testUpload("letter.exe", 1024)
		input.Documents["cs_form_no_9_annex_p"] = testUpload("annex.pdf", 20<<20)

		errs := validateSubmission(input, reqs)
		assert.Len(t, errs, 5)

		// Field errors come first, then document errors in catalog order.
		assert.Equal(t, InvalidField, errs[0].Kind)
		assert.Equal(t, "full_name", errs[0].Subject)
		assert.Equal(t, InvalidField, errs[1].Kind)
		assert.Equal(t, "email", errs[1].Subject)
		assert.Equal(t, MissingDocument, errs[2].Kind)
		assert.Equal(t, "Personal Data Sheet", errs[2].Subject)
		assert.Equal(t, UnsupportedFileType, errs[3].Kind)
		assert.Equal(t, "Application Letter", errs[3].Subject)
		assert.Equal(t, FileSizeExceeded, errs[4].Kind)
		assert.Equal(t, "CS Form No. 9 Annex P", errs[4].Subject)
	})

	t.Run("All Fields Blank Reports Every Field", func(t *testing.T) {
		input := &SubmissionInput{Documents: map[string]*DocumentUpload{}}
		errs := validateSubmission(input, reqs)
		// 4 personal fields plus 6 missing documents.
		assert.Len(t, errs, 10)
	})

	t.Run("Error String Joins Messages", func(t *testing.T) {
		input := validInput()
		input.FullName = ""
		input.Email = ""
		errs := validateSubmission(input, reqs)
		assert.Contains(t, errs.Error(), "full_name is required")
		assert.Contains(t, errs.Error(), "email is required")
	})
}
