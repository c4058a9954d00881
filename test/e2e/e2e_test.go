package e2e

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
)

// browser wraps a chromedp context with test helpers.
type browser struct {
	ctx     context.Context
	cancel  context.CancelFunc
	t       *testing.T
	baseURL string
}

// newBrowser needs a running server; point E2E_BASE_URL at it.
func newBrowser(t *testing.T, timeout time.Duration) *browser {
	t.Helper()
	base := os.Getenv("E2E_BASE_URL")
	if base == "" {
		t.Skip("E2E_BASE_URL not set")
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, ctxCancel := chromedp.NewContext(allocCtx)
	ctx, timeCancel := context.WithTimeout(ctx, timeout)

	b := &browser{ctx: ctx, t: t, baseURL: strings.TrimRight(base, "/")}
	b.cancel = func() { timeCancel(); ctxCancel(); allocCancel() }
	return b
}

func (b *browser) close() { b.cancel() }

func (b *browser) run(actions ...chromedp.Action) {
	b.t.Helper()
	if err := chromedp.Run(b.ctx, actions...); err != nil {
		b.t.Fatalf("chromedp: %v", err)
	}
}

func (b *browser) eval(js string) string {
	b.t.Helper()
	var r interface{}
	if err := chromedp.Run(b.ctx, chromedp.Evaluate(js, &r)); err != nil {
		b.t.Fatalf("eval: %v", err)
	}
	if r == nil {
		return ""
	}
	return fmt.Sprintf("%v", r)
}

func (b *browser) open(path string) {
	b.t.Helper()
	b.run(chromedp.Navigate(b.baseURL+path), chromedp.WaitVisible(`form`, chromedp.ByQuery))
}

// submit clicks the form's primary button and waits for the page to come back
// in a terminal state.
func (b *browser) submit(wait time.Duration) string {
	b.t.Helper()
	b.run(
		chromedp.Click(`button.primary`, chromedp.ByQuery),
		chromedp.Sleep(wait),
		chromedp.WaitReady(`body`, chromedp.ByQuery),
	)
	return b.bodyText()
}

func (b *browser) alert() string {
	return b.eval(`(function(){ var d = document.querySelector('.alert.error'); return d ? d.textContent.trim() : ""; })()`)
}

func (b *browser) bodyText() string {
	return b.eval(`document.body.innerText`)
}

// --- Tests ---

func TestFloodPageDefaults(t *testing.T) {
	b := newBrowser(t, 30*time.Second)
	defer b.close()

	b.open("/flood")
	body := b.bodyText()
	for _, want := range []string{"Weather Conditions", "Historical Flood Data", "Soil & Temporal Data", "Predict Flood Risk"} {
		if !strings.Contains(body, want) {
			t.Fatalf("flood page missing %q", want)
		}
	}
	if got := b.eval(`document.querySelector('input[name="avg_temp"]').value`); got != "28.5" {
		t.Fatalf("avg_temp default = %q", got)
	}
	if got := b.eval(`document.querySelector('select[name="month"]').value`); got != "7" {
		t.Fatalf("month default = %q", got)
	}
	if b.eval(`document.querySelectorAll('.metric').length`) != "0" {
		t.Fatal("metrics shown before any submission")
	}
	t.Log("OK: idle flood page")
}

func TestFloodSubmit(t *testing.T) {
	b := newBrowser(t, 60*time.Second)
	defer b.close()

	b.open("/flood")
	body := b.submit(15 * time.Second)

	if msg := b.alert(); msg != "" {
		// A cold backend is reported inline and the page keeps serving.
		if b.eval(`document.querySelectorAll('.metric').length`) != "0" {
			t.Fatal("metrics rendered next to an error")
		}
		t.Logf("OK: backend error rendered: %s", msg)
		return
	}
	if !strings.Contains(body, "Prediction completed!") {
		t.Fatal("no success banner")
	}
	if b.eval(`document.querySelectorAll('.metric').length`) != "3" {
		t.Fatal("expected three metrics")
	}
	if b.eval(`document.querySelectorAll('svg').length`) != "3" {
		t.Fatal("expected three charts")
	}
	t.Log("OK: prediction rendered")
}

func TestAskEmptyQuestion(t *testing.T) {
	b := newBrowser(t, 30*time.Second)
	defer b.close()

	b.open("/ask")
	b.submit(time.Second)
	if !strings.Contains(b.alert(), "Please enter a question.") {
		t.Fatal("empty question not refused")
	}
	t.Log("OK: empty question refused")
}

func TestAskQuestion(t *testing.T) {
	b := newBrowser(t, 120*time.Second)
	defer b.close()

	b.open("/ask")
	b.run(chromedp.SendKeys(`textarea[name="query"]`, "When should I plant maize?", chromedp.ByQuery))
	b.submit(60 * time.Second)

	if msg := b.alert(); msg != "" {
		t.Logf("OK: assistant error rendered: %s", msg)
		return
	}
	if b.eval(`document.querySelector('section.answer') ? 'yes' : 'no'`) != "yes" {
		t.Fatal("answer not rendered")
	}
	t.Log("OK: answer rendered")
}

func TestNavigation(t *testing.T) {
	b := newBrowser(t, 30*time.Second)
	defer b.close()

	b.run(chromedp.Navigate(b.baseURL+"/"), chromedp.WaitVisible(`form`, chromedp.ByQuery))
	var loc string
	b.run(chromedp.Location(&loc))
	if !strings.HasSuffix(loc, "/flood") {
		t.Fatalf("root redirected to %s", loc)
	}
	b.run(chromedp.Click(`a[href="/ask"]`, chromedp.ByQuery), chromedp.WaitVisible(`textarea`, chromedp.ByQuery))
	t.Log("OK: navigation")
}
