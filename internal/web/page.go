package web

import (
	"strings"

	"github.com/dshills/pagedit/internal/engine/textarea"
	"github.com/dshills/pagedit/internal/toolbar"
)

// Element ids of the page edit form.
const (
	FormID    = "form-and-preview"
	ContentID = "page-content"
)

// ElementLookup offers the buttons present in doc.
func ElementLookup(doc Document) toolbar.Lookup {
	return toolbar.LookupFunc(func(id string) bool {
		return doc.ElementByID(id) != nil
	})
}

// InstrumentPageEdit binds the toolbar buttons on an edit page to the page
// textarea. Pages without the edit form or its content field are left
// alone and return nil. A content field that is not a textarea is an error.
func InstrumentPageEdit(doc Document, table toolbar.Table, opts ...toolbar.Option) (*toolbar.Toolbar, error) {
	if doc.ElementByID(FormID) == nil {
		return nil, nil
	}
	el := doc.ElementByID(ContentID)
	if el == nil {
		return nil, nil
	}
	if !strings.EqualFold(el.TagName(), "textarea") {
		return nil, textarea.ErrNotTextInput
	}
	text, err := textarea.New(NewTextArea(el))
	if err != nil {
		return nil, err
	}

	tb := toolbar.New(text, table, ElementLookup(doc), opts...)
	for _, id := range tb.Buttons() {
		doc.ElementByID(id).OnClick(func() {
			tb.Click(id)
		})
	}
	return tb, nil
}
