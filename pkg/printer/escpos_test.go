package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStartsWithInit(t *testing.T) {
	d := NewDocument(48)
	assert.Equal(t, []byte{ESC, '@'}, d.Bytes())
}

func TestDocumentTextAndFeed(t *testing.T) {
	d := NewDocument(32).Text("hello").FeedLines(2)
	raw := d.Bytes()
	assert.Contains(t, string(raw), "hello\n\n\n")
}

func TestSeparatorSpansWidth(t *testing.T) {
	d := NewDocument(32).Separator('-')
	assert.Contains(t, string(d.Bytes()), strings.Repeat("-", 32))
}

func TestBoldToggle(t *testing.T) {
	d := NewDocument(48).SetBold(true).Text("TOTAL").SetBold(false)
	raw := d.Bytes()
	on := bytes.Index(raw, []byte{ESC, 'E', 1})
	off := bytes.Index(raw, []byte{ESC, 'E', 0})
	require.NotEqual(t, -1, on)
	require.NotEqual(t, -1, off)
	assert.Less(t, on, off)
}

func TestResetClearsBuffer(t *testing.T) {
	d := NewDocument(48).Text("stale").Reset()
	assert.Equal(t, []byte{ESC, '@'}, d.Bytes())
}

func TestNullPrinter(t *testing.T) {
	p := NewNullPrinter()
	assert.NoError(t, p.Print([]byte("anything")))
	assert.False(t, p.IsConnected())
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("none", "", "")
	require.NoError(t, err)
	assert.False(t, p.IsConnected())

	_, err = NewPrinterFromConfig("usb", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("laser", "", "")
	assert.Error(t, err)

	p, err = NewPrinterFromConfig("network", "", "127.0.0.1:9100")
	require.NoError(t, err)
	assert.NotNil(t, p)
}
