package interactive_test

import (
	"context"
	"testing"
	"time"

	"github.com/kattlog/kattlog"
	"github.com/kattlog/kattlog/interactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionPage = `<html><body>
<main>
	<div id="card" class="product-card">
		<a href="/producto/mesa">
			<img id="photo" src="https://cdn.example.com/products/mesa.jpg" width="300" height="300" alt="Mesa de centro">
		</a>
		<h3 id="title">Mesa de centro</h3>
		<span class="price">129,00 €</span>
		<button>Añadir al carrito</button>
	</div>
</main>
</body></html>`

func newTestSession(t *testing.T) (*interactive.Session, *interactive.ChannelBus, *interactive.Element) {
	t.Helper()
	bus := interactive.NewChannelBus()
	session := interactive.NewSession("https://example.com/catalogo", &interactive.AttrLayout{}, bus)
	root := parseFixture(t, sessionPage)
	return session, bus, root
}

func drain(bus *interactive.ChannelBus) []interactive.Message {
	var out []interactive.Message
	for {
		select {
		case msg := <-bus.C:
			out = append(out, msg)
		default:
			return out
		}
	}
}

func TestSession_ModeGating(t *testing.T) {
	t.Parallel()

	session, _, root := newTestSession(t)
	leaf := root.FindByID("title")

	// A fresh session navigates; pointer events must be inert.
	assert.Equal(t, kattlog.ModeNavigate, session.Mode())
	assert.Nil(t, session.PointerMove(leaf))
	assert.Nil(t, session.Click(leaf))

	session.HandleMessage(interactive.SetMode{Mode: kattlog.ModeCapture})
	assert.Equal(t, kattlog.ModeCapture, session.Mode())

	highlight := session.PointerMove(leaf)
	require.NotNil(t, highlight)
	assert.Equal(t, "card", highlight.Element.Attr("id"))
	assert.GreaterOrEqual(t, highlight.Score, kattlog.ScoreThreshold)

	// Switching back to navigate clears the overlay.
	session.HandleMessage(interactive.SetMode{Mode: kattlog.ModeNavigate})
	assert.Nil(t, session.Highlight())
}

func TestSession_ForeignMessagesIgnored(t *testing.T) {
	t.Parallel()

	session, _, _ := newTestSession(t)
	session.HandleMessage(interactive.Ready{URL: "https://other.example.com"})
	assert.Equal(t, kattlog.ModeNavigate, session.Mode())
}

func TestSession_ClickUsesCachedHighlight(t *testing.T) {
	t.Parallel()

	session, bus, root := newTestSession(t)
	session.HandleMessage(interactive.SetMode{Mode: kattlog.ModeCapture})

	leaf := root.FindByID("photo")
	require.NotNil(t, session.PointerMove(leaf))

	capture := session.Click(leaf)
	require.NotNil(t, capture)
	assert.Equal(t, "https://example.com/producto/mesa", capture.ProductURL)
	assert.Equal(t, "https://cdn.example.com/products/mesa.jpg", capture.PreviewImage)
	assert.Equal(t, "https://example.com/catalogo", capture.URL)

	// The click consumes the highlight.
	assert.Nil(t, session.Highlight())

	msgs := drain(bus)
	require.Len(t, msgs, 1)
	sent, ok := msgs[0].(interactive.Capture)
	require.True(t, ok)
	assert.Equal(t, *capture, sent.InteractiveCapture)
}

func TestSession_ClickWithoutHover(t *testing.T) {
	t.Parallel()

	session, bus, root := newTestSession(t)
	session.HandleMessage(interactive.SetMode{Mode: kattlog.ModeCapture})

	// No preceding PointerMove; the walk is redone from the click target.
	capture := session.Click(root.FindByID("title"))
	require.NotNil(t, capture)
	assert.Equal(t, "div", capture.TagName)
	assert.Len(t, drain(bus), 1)
}

func TestSession_Announce(t *testing.T) {
	t.Parallel()

	session, bus, _ := newTestSession(t)
	session.Announce()
	session.PointerDown()

	msgs := drain(bus)
	require.Len(t, msgs, 2)
	for _, msg := range msgs {
		assert.Equal(t, interactive.Ready{URL: "https://example.com/catalogo"}, msg)
	}
}

func TestSession_Heartbeat(t *testing.T) {
	t.Parallel()

	session, _, _ := newTestSession(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		session.Heartbeat(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("heartbeat did not stop on context cancellation")
	}
}
