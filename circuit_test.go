package hwtrace_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pkg/errors"

	hw "github.com/db47h/hwtrace"
	hl "github.com/db47h/hwtrace/hwlib"
	"github.com/db47h/hwtrace/hwtest"
	"github.com/db47h/hwtrace/vcd"
)

func TestNewCircuit_errors(t *testing.T) {
	if _, err := hw.NewCircuit(0, 4); err == nil {
		t.Fatal("expected error for empty part list")
	}
}

func TestNewCircuit_spc(t *testing.T) {
	for _, d := range []struct{ in, out uint }{{0, 2}, {1, 2}, {2, 2}, {3, 4}, {5, 8}, {16, 16}, {17, 32}} {
		c, err := hw.NewCircuit(1, d.in, hl.Const(1, 0)("out=x"))
		if err != nil {
			t.Fatal(err)
		}
		if c.SPC() != d.out {
			t.Errorf("stepsPerCycle %d: got SPC() = %d, expected %d", d.in, c.SPC(), d.out)
		}
		c.Dispose()
	}
}

func Test_clock(t *testing.T) {
	c, err := hw.NewCircuit(0, 4, hl.Const(1, 0)("out=x"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	clk := c.Wire(hw.Clk)
	if clk == nil || c.Wires()[0] != clk {
		t.Fatal("clock is not the first wire")
	}
	var r hwtest.Recorder
	if err := c.Trace(&r, clk); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		c.Step()
	}
	if got, want := r.Values(clk), []int64{1, 0, 1, 0, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("clock values %v, expected %v", got, want)
	}
	if r.Time() != 8 || c.Steps() != 8 {
		t.Fatalf("trace time %d, steps %d, expected 8", r.Time(), c.Steps())
	}

	c.TickTock()
	if !c.AtTick() {
		t.Fatal("not at raising edge after TickTock")
	}
	c.Tick()
	if !c.AtTock() {
		t.Fatal("not at falling edge after Tick")
	}
}

func TestCircuit_trace(t *testing.T) {
	c, err := hw.NewCircuit(0, 2,
		hl.Const(1, 1)("out=en"),
		hl.Counter(2)("en=en, out=count"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	path := filepath.Join(t.TempDir(), "count.vcd")
	w, err := vcd.New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err = c.Trace(w, c.Wire("count")); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		c.Step()
	}
	if err = c.Err(); err != nil {
		t.Fatal(err)
	}
	if err = w.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `$var wire 2 ! count $end
$enddefinitions $end
$dumpvars
b00 !
$end
#0
b00 !
#1
b01 !
#2
#3
b10 !
#4
#5
b11 !
#6
#7
b00 !
#8
`
	if string(b) != want {
		t.Fatalf("got trace:\n%s\nexpected:\n%s", b, want)
	}
}

func TestCircuit_traceAll(t *testing.T) {
	c, err := hw.NewCircuit(0, 2,
		hl.Input(3, func() int64 { return 5 })("out=x"),
		hl.Not(3)("in=x, out=nx"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	var r hwtest.Recorder
	if err = c.Trace(&r); err != nil {
		t.Fatal(err)
	}
	if e := r.Events[0]; e.Op != hwtest.OpInit || len(e.Signals) != 3 {
		t.Fatalf("first event %+v, expected Init of 3 wires", e)
	}
	c.Step()
	c.Step()
	if got, want := r.Values(c.Wire("nx")), []int64{0, 7, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("nx values %v, expected %v", got, want)
	}
}

func TestCircuit_traceError(t *testing.T) {
	c, err := hw.NewCircuit(0, 2, hl.Const(1, 0)("out=x"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	var r hwtest.Recorder
	if err = c.Trace(&r); err != nil {
		t.Fatal(err)
	}
	c.Step()
	if err = r.Close(); err != nil {
		t.Fatal(err)
	}
	n := len(r.Events)
	c.Step()
	c.Step()
	if !errors.Is(c.Err(), vcd.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", c.Err())
	}
	if len(r.Events) != n {
		t.Fatal("tracing continued after an error")
	}

	if err = c.Trace(&r); !errors.Is(err, vcd.ErrClosed) {
		t.Fatalf("Trace with closed tracer: expected ErrClosed, got %v", err)
	}
}

func TestCircuit_widthConflict(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a wire used with two widths")
		}
	}()
	c, _ := hw.NewCircuit(0, 2,
		hl.Const(4, 3)("out=x"),
		hl.Not(1)("in=x, out=y"),
	)
	c.Dispose()
}

func TestCircuit_setMask(t *testing.T) {
	c, err := hw.NewCircuit(0, 2,
		hl.Input(4, func() int64 { return -1 })("out=x"),
		hl.Input(64, func() int64 { return -1 })("out=y"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	c.Step()
	if v := c.Get(c.Wire("x")); v != 15 {
		t.Fatalf("4 bits wire set to -1 reads %d, expected 15", v)
	}
	if v := c.Get(c.Wire("y")); v != -1 {
		t.Fatalf("64 bits wire set to -1 reads %d, expected -1", v)
	}
}
