package box

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/boxflow/internal/layout"
	"github.com/grindlemire/boxflow/pkg/document"
)

type counter struct {
	changed     int
	invalidated int
}

func (c *counter) BoxModelChanged(*Model)     { c.changed++ }
func (c *counter) BoxModelInvalidated(*Model) { c.invalidated++ }

func set(t *testing.T, doc *document.Document, h document.Handle, key string, v document.Var) {
	t.Helper()
	require.NoError(t, doc.Set(h, key, v))
}

func TestModel_WidthAndHeight(t *testing.T) {
	doc := document.New()
	h := doc.CreateNode("Component")
	m := New(doc, h, nil)

	assert.Equal(t, 0.0, m.Width())
	assert.Equal(t, 0.0, m.Height())

	set(t, doc, h, KeyPadding, document.String("5 10 15 20"))
	assert.Equal(t, 10.0+20.0, m.Width())
	assert.Equal(t, 5.0+15.0, m.Height())

	set(t, doc, h, KeyBorder, document.String("6, 12, 18, 24"))
	assert.Equal(t, 10.0+20.0+12.0+24.0, m.Width())
	assert.Equal(t, 5.0+15.0+6.0+18.0, m.Height())

	set(t, doc, h, KeyWidth, document.Int(123))
	assert.Equal(t, 123.0, m.Width())

	set(t, doc, h, KeyHeight, document.Int(987))
	assert.Equal(t, 987.0, m.Height())
}

func TestModel_PercentOfParent(t *testing.T) {
	doc := document.New()
	parentNode := doc.CreateNode("Component")
	childNode := doc.CreateNode("Component")
	require.NoError(t, doc.Append(parentNode, childNode))
	set(t, doc, parentNode, KeyWidth, document.Int(333))
	set(t, doc, parentNode, KeyHeight, document.Int(888))

	parent := New(doc, parentNode, nil)
	child := New(doc, childNode, parent)
	assert.Equal(t, 333.0, parent.Width())
	assert.Equal(t, 888.0, parent.Height())
	assert.Equal(t, 0.0, child.Width())
	assert.Equal(t, 0.0, child.Height())

	set(t, doc, childNode, KeyWidth, document.String("100/3%"))
	assert.InDelta(t, 111.0, child.Width(), 0.001)

	set(t, doc, childNode, KeyHeight, document.String("50%"))
	assert.Equal(t, 444.0, child.Height())

	t.Run("follows parent resize", func(t *testing.T) {
		set(t, doc, parentNode, KeyHeight, document.Int(100))
		assert.Equal(t, 50.0, child.Height())
	})

	t.Run("resolves against parent content box", func(t *testing.T) {
		set(t, doc, parentNode, KeyPadding, document.Int(10))
		assert.Equal(t, 40.0, child.Height())
	})
}

func TestModel_Shorthand(t *testing.T) {
	type tc struct {
		key   string
		value document.Var
		get   func(*Model) layout.Edges
		want  layout.Edges
	}

	padding := func(m *Model) layout.Edges { return m.Padding() }
	border := func(m *Model) layout.Edges { return m.Border() }
	margin := func(m *Model) layout.Edges { return m.Margin() }

	tests := map[string]tc{
		"padding single number": {key: KeyPadding, value: document.Int(14), get: padding, want: layout.EdgeAll(14)},
		"padding two values": {
			key: KeyPadding, value: document.String("112.4 73.7"), get: padding,
			want: layout.EdgeTRBL(112.4, 73.7, 112.4, 73.7),
		},
		"padding three values": {
			key: KeyPadding, value: document.String("14.25 8.3 1.1"), get: padding,
			want: layout.EdgeTRBL(14.25, 8.3, 1.1, 8.3),
		},
		"padding four values": {
			key: KeyPadding, value: document.String("5 10 15 20"), get: padding,
			want: layout.EdgeTRBL(5, 10, 15, 20),
		},
		"border four values": {
			key: KeyBorder, value: document.String("9 8 7 6"), get: border,
			want: layout.EdgeTRBL(9, 8, 7, 6),
		},
		"margin four values": {
			key: KeyMargin, value: document.String("2 4 6 8"), get: margin,
			want: layout.EdgeTRBL(2, 4, 6, 8),
		},
		"malformed is zero": {key: KeyMargin, value: document.String("2 four"), get: margin, want: layout.Edges{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := document.New()
			h := doc.CreateNode("Component")
			m := New(doc, h, nil)
			assert.Equal(t, layout.Edges{}, tt.get(m))

			set(t, doc, h, tt.key, tt.value)
			assert.Equal(t, tt.want, tt.get(m))
		})
	}
}

func TestModel_ContentBounds(t *testing.T) {
	doc := document.New()
	parentNode := doc.CreateNode("Component")
	h := doc.CreateNode("Component")
	require.NoError(t, doc.Append(parentNode, h))
	set(t, doc, h, KeyWidth, document.Int(200))
	set(t, doc, h, KeyHeight, document.Int(150))
	set(t, doc, h, KeyPadding, document.String("30"))
	set(t, doc, h, KeyBorder, document.String("5 10 15 20"))

	m := New(doc, h, New(doc, parentNode, nil))

	assert.Equal(t, layout.NewRect(
		30+20,
		30+5,
		200-30-30-10-20,
		150-30-30-5-15,
	), m.ContentBounds())
}

func TestModel_MinimumAndMaximumBounds(t *testing.T) {
	doc := document.New()
	h := doc.CreateNode("Component")
	m := New(doc, h, nil)

	assert.Equal(t, layout.NewRect(0, 0, layout.NotAssigned, layout.NotAssigned), m.MaximumBounds())

	m.SetAutoMinimumSize(40, 30)
	assert.Equal(t, layout.NewRect(0, 0, 40, 30), m.MinimumBounds())

	v, ok := doc.Get(h, KeyAutoMinWidth)
	require.True(t, ok)
	assert.Equal(t, "40", v.String())

	set(t, doc, h, KeyMinWidth, document.Int(55))
	set(t, doc, h, KeyMaxHeight, document.Int(500))
	assert.Equal(t, layout.NewRect(0, 0, 55, 30), m.MinimumBounds())
	assert.Equal(t, layout.NewRect(0, 0, layout.NotAssigned, 500), m.MaximumBounds())
}

func TestModel_IdealSizeFeedsAuto(t *testing.T) {
	doc := document.New()
	h := doc.CreateNode("Component")
	set(t, doc, h, KeyPadding, document.Int(5))
	m := New(doc, h, nil)

	m.SetIdealSize(80, 4)
	assert.Equal(t, 80.0, m.Width())
	assert.Equal(t, 10.0, m.Height(), "chrome wins over a smaller ideal")
	assert.Equal(t, layout.NewRect(0, 0, 80, 4), m.IdealBounds())
}

func TestModel_Overrides(t *testing.T) {
	doc := document.New()
	h := doc.CreateNode("Component")
	set(t, doc, h, KeyWidth, document.Int(100))
	m := New(doc, h, nil)

	m.SetSize(250, 40)
	assert.True(t, m.HasAutoHeight())
	assert.Equal(t, 250.0, m.Width())
	assert.Equal(t, 100.0, m.NaturalWidth())

	set(t, doc, h, KeyPadding, document.Int(2))
	assert.Equal(t, 250.0, m.Width(), "override survives unrelated changes")

	set(t, doc, h, KeyWidth, document.Int(120))
	assert.Equal(t, 120.0, m.Width(), "a new width replaces the override")
	assert.Equal(t, 40.0, m.Height())
}

func TestModel_Notifications(t *testing.T) {
	type tc struct {
		act             func(t *testing.T, doc *document.Document, h document.Handle, m *Model)
		wantChanged     int
		wantInvalidated int
		wantValid       bool
	}

	tests := map[string]tc{
		"width change fires once": {
			act: func(t *testing.T, doc *document.Document, h document.Handle, m *Model) {
				set(t, doc, h, KeyWidth, document.Int(10))
			},
			wantChanged: 1,
			wantValid:   true,
		},
		"equal write is silent": {
			act: func(t *testing.T, doc *document.Document, h document.Handle, m *Model) {
				set(t, doc, h, KeyWidth, document.String("auto"))
			},
			wantValid: true,
		},
		"invalidate fires once per transition": {
			act: func(t *testing.T, doc *document.Document, h document.Handle, m *Model) {
				m.Invalidate()
				m.Invalidate()
			},
			wantInvalidated: 1,
		},
		"validate is silent": {
			act: func(t *testing.T, doc *document.Document, h document.Handle, m *Model) {
				m.Invalidate()
				m.Validate()
				m.Invalidate()
			},
			wantInvalidated: 2,
		},
		"change revalidates": {
			act: func(t *testing.T, doc *document.Document, h document.Handle, m *Model) {
				m.Invalidate()
				m.SetSize(5, 5)
			},
			wantChanged:     1,
			wantInvalidated: 1,
			wantValid:       true,
		},
		"ideal size on both axes fires once": {
			act: func(t *testing.T, doc *document.Document, h document.Handle, m *Model) {
				m.SetIdealSize(40, 30)
				assert.Equal(t, 40.0, m.Width())
				assert.Equal(t, 30.0, m.Height())
			},
			wantChanged: 1,
			wantValid:   true,
		},
		"auto minimum on both axes fires once": {
			act: func(t *testing.T, doc *document.Document, h document.Handle, m *Model) {
				m.SetAutoMinimumSize(12, 8)
				assert.Equal(t, layout.NewRect(0, 0, 12, 8), m.MinimumBounds())
			},
			wantChanged: 1,
			wantValid:   true,
		},
		"unchanged ideal size is silent": {
			act: func(t *testing.T, doc *document.Document, h document.Handle, m *Model) {
				m.SetIdealSize(0, -3)
			},
			wantValid: true,
		},
		"same size override is silent": {
			act: func(t *testing.T, doc *document.Document, h document.Handle, m *Model) {
				m.SetSize(0, 0)
			},
			wantValid: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := document.New()
			h := doc.CreateNode("Component")
			m := New(doc, h, nil)
			c := &counter{}
			m.AddListener(c)

			tt.act(t, doc, h, m)

			assert.Equal(t, tt.wantChanged, c.changed)
			assert.Equal(t, tt.wantInvalidated, c.invalidated)
			assert.Equal(t, tt.wantValid, m.IsValid())
		})
	}
}

func TestModel_RemoveListenerAndClose(t *testing.T) {
	doc := document.New()
	parentNode := doc.CreateNode("Component")
	h := doc.CreateNode("Component")
	require.NoError(t, doc.Append(parentNode, h))
	parent := New(doc, parentNode, nil)
	m := New(doc, h, parent)

	c := &counter{}
	funcs := &ListenerFuncs{Changed: func(*Model) { c.changed++ }}
	m.AddListener(funcs)

	set(t, doc, h, KeyWidth, document.String("50%"))
	m.RemoveListener(funcs)
	set(t, doc, h, KeyWidth, document.String("25%"))
	assert.Equal(t, 1, c.changed)

	m.Close()
	set(t, doc, parentNode, KeyWidth, document.Int(400))
	set(t, doc, h, KeyWidth, document.Int(7))
	assert.Equal(t, 0.0, m.Width())
}
