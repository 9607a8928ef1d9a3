package form

import (
	"errors"
	"regexp"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	pathSummary  = "summary"
	pathFullName = "personalInformation.fullName"
)

// ErrInvalidFormData is returned when a form document is not a JSON object.
var ErrInvalidFormData = errors.New("form data must be a JSON object")

var fullNamePattern = regexp.MustCompile(`Name: ([^\n]+)`)

// FormData is an immutable resume form document. Only the summary and the
// personal full name are interpreted; every other field is carried as-is.
type FormData struct {
	doc string
}

const defaultFormJSON = `{
  "personalInformation": {
    "fullName": "",
    "email": "",
    "phoneNumber": "",
    "location": "",
    "linkedIn": "",
    "gitHub": "",
    "portfolio": ""
  },
  "summary": "",
  "skills": [],
  "experience": [],
  "education": [],
  "certifications": [],
  "projects": [],
  "achievements": [],
  "languages": [],
  "interests": []
}`

// DefaultFormData returns the empty form the editor starts from.
func DefaultFormData() FormData {
	return FormData{doc: defaultFormJSON}
}

// NewFormData wraps raw JSON. The document must be an object.
func NewFormData(raw []byte) (FormData, error) {
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return FormData{}, ErrInvalidFormData
	}
	return FormData{doc: string(raw)}, nil
}

func (f FormData) json() string {
	if f.doc == "" {
		return "{}"
	}
	return f.doc
}

// Summary returns the summary field, or "" when absent.
func (f FormData) Summary() string {
	return gjson.Get(f.json(), pathSummary).String()
}

// FullName returns personalInformation.fullName, or "" when absent.
func (f FormData) FullName() string {
	return gjson.Get(f.json(), pathFullName).String()
}

// Get reads an arbitrary path using gjson syntax.
func (f FormData) Get(path string) gjson.Result {
	return gjson.Get(f.json(), path)
}

// JSON returns the document bytes.
func (f FormData) JSON() []byte {
	return []byte(f.json())
}

// Pretty returns the document indented for display.
func (f FormData) Pretty() []byte {
	return []byte(gjson.Get(f.json(), "@pretty").Raw)
}

func (f FormData) String() string { return f.json() }

// ExtractFullName returns the first "Name: <value>" capture in text.
func ExtractFullName(text string) (string, bool) {
	m := fullNamePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Merge folds a generated resume body into prev. The summary becomes body and
// the full name is replaced only when body carries a "Name:" line.
func Merge(prev FormData, body string) (FormData, error) {
	doc, err := sjson.Set(prev.json(), pathSummary, body)
	if err != nil {
		return prev, err
	}
	if name, ok := ExtractFullName(body); ok {
		doc, err = sjson.Set(doc, pathFullName, name)
		if err != nil {
			return prev, err
		}
	}
	return FormData{doc: doc}, nil
}
