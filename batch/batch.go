// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package batch

import (
	"log/slog"
	"slices"

	"github.com/ezrec/typo/base"
	"github.com/ezrec/typo/enzyme"
	"github.com/ezrec/typo/machine"
)

// Batch is the lockstep execution context for a set of lanes.
type Batch struct {
	Verbose bool         // Set to enable verbose logging.
	Logger  *slog.Logger // Logger for verbose mode, slog.Default() if nil.
	Metrics *Metrics     // Optional counters.

	lanes    int // Lane count.
	capacity int // Strand capacity per lane.
	slots    int // Fragment slots per lane.
	width    int // Code words per lane; the longest program plus a no-op.
	tick     int // Ticks executed.
	trimmed  int // Targets truncated on load.

	code      []enzyme.Amino // lanes*width
	primary   []base.Base    // lanes*capacity
	secondary []base.Base    // lanes*capacity
	length    []int
	cursor    []int
	pc        []int
	onSecond  []bool
	copying   []bool
	halt      []machine.Halt
	overflow  []Overflow

	fragPrimary   []base.Base // lanes*slots*capacity
	fragSecondary []base.Base // lanes*slots*capacity
	fragLength    []int       // lanes*slots
	fragCount     []int
}

// NewBatch loads one lane per (enzyme, target, position) triple.
//
// Targets must parse as strands and positions must index a loaded cell.
// The base at a position is not checked against the enzyme's binding
// preference.
func NewBatch(cfg Config, enzymes []enzyme.Enzyme, targets []string, positions []int) (b *Batch, err error) {
	if len(enzymes) != len(targets) || len(targets) != len(positions) {
		err = ErrLaneMismatch
		return
	}

	var longestTarget, longestProgram int
	for lane := range enzymes {
		longestTarget = max(longestTarget, len(targets[lane]))
		longestProgram = max(longestProgram, len(enzymes[lane].Aminos))
	}

	lanes := len(enzymes)
	capacity := cfg.Capacity(longestTarget, longestProgram)
	slots := cfg.Slots(longestProgram)
	width := longestProgram + 1

	b = &Batch{
		lanes:         lanes,
		capacity:      capacity,
		slots:         slots,
		width:         width,
		code:          make([]enzyme.Amino, lanes*width),
		primary:       make([]base.Base, lanes*capacity),
		secondary:     make([]base.Base, lanes*capacity),
		length:        make([]int, lanes),
		cursor:        make([]int, lanes),
		pc:            make([]int, lanes),
		onSecond:      make([]bool, lanes),
		copying:       make([]bool, lanes),
		halt:          make([]machine.Halt, lanes),
		overflow:      make([]Overflow, lanes),
		fragPrimary:   make([]base.Base, lanes*slots*capacity),
		fragSecondary: make([]base.Base, lanes*slots*capacity),
		fragLength:    make([]int, lanes*slots),
		fragCount:     make([]int, lanes),
	}

	for lane := range lanes {
		err = b.load(lane, enzymes[lane], targets[lane], positions[lane])
		if err != nil {
			err = ErrLane{Lane: lane, Err: err}
			b = nil
			return
		}
	}

	return
}

func (b *Batch) load(lane int, e enzyme.Enzyme, target string, position int) (err error) {
	bases, err := base.Parse(target)
	if err != nil {
		return
	}

	if len(bases) > b.capacity {
		bases = bases[:b.capacity]
		b.overflow[lane] |= OVERFLOW_STRAND
		b.trimmed++
	}

	if position < 0 || position >= len(bases) {
		err = machine.ErrBindRange{Position: position, Length: len(bases)}
		return
	}

	code := b.code[lane*b.width : (lane+1)*b.width]
	n := copy(code, e.Aminos)
	for ; n < len(code); n++ {
		code[n] = enzyme.AMINO_NOP
	}

	copy(b.primary[lane*b.capacity:], bases)
	b.length[lane] = len(bases)
	b.cursor[lane] = position

	return
}

// Lanes returns the lane count.
func (b *Batch) Lanes() int {
	return b.lanes
}

// Capacity returns the strand capacity of each lane.
func (b *Batch) Capacity() int {
	return b.capacity
}

// Slots returns the fragment slots of each lane.
func (b *Batch) Slots() int {
	return b.slots
}

// Ticks returns the ticks executed so far.
func (b *Batch) Ticks() int {
	return b.tick
}

// Halt returns why a lane stopped, or HALT_NONE if it is still live.
func (b *Batch) Halt(lane int) machine.Halt {
	return b.halt[lane]
}

// Overflow returns the capacity flags raised by a lane.
func (b *Batch) Overflow(lane int) Overflow {
	return b.overflow[lane]
}

func (b *Batch) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

func (b *Batch) flag(lane int, flag Overflow) {
	b.overflow[lane] |= flag
	b.Metrics.overflow(flag)
	if b.Verbose {
		b.logger().Warn("batch: overflow", "lane", lane, "kind", flag.String(), "capacity", b.capacity, "slots", b.slots)
	}
}

// Tick advances every live lane by one amino, and returns true once all
// lanes have halted.
func (b *Batch) Tick() (done bool) {
	if b.tick >= b.width {
		return true
	}

	if b.tick == 0 && b.Metrics != nil {
		b.Metrics.Lanes.Add(float64(b.lanes))
		if b.trimmed != 0 {
			b.Metrics.Overflow.WithLabelValues(OVERFLOW_STRAND.String()).Add(float64(b.trimmed))
		}
	}

	live := 0
	for lane := range b.lanes {
		if b.halt[lane] != machine.HALT_NONE {
			continue
		}

		amino := b.code[lane*b.width+b.tick]
		if amino == enzyme.AMINO_NOP {
			b.halt[lane] = machine.HALT_EXHAUSTED
			continue
		}

		b.pc[lane]++
		b.execute(lane, amino)

		if b.cursor[lane] < 0 || b.cursor[lane] >= b.length[lane] {
			b.halt[lane] = machine.HALT_FELL_OFF
			continue
		}

		live++
	}

	if b.Verbose {
		b.logger().Debug("batch: tick", "tick", b.tick, "live", live)
	}

	if b.Metrics != nil {
		b.Metrics.Ticks.Inc()
	}

	b.tick++
	done = live == 0 || b.tick >= b.width

	return
}

// Run ticks until every lane has halted.
func (b *Batch) Run() {
	for !b.Tick() {
	}
}

// strand returns the primary and secondary buffers of a lane, full capacity.
func (b *Batch) strand(lane int) (primary, secondary []base.Base) {
	start := lane * b.capacity
	end := start + b.capacity
	return b.primary[start:end], b.secondary[start:end]
}

func (b *Batch) fragment(lane, slot int) (primary, secondary []base.Base) {
	start := (lane*b.slots + slot) * b.capacity
	end := start + b.capacity
	return b.fragPrimary[start:end], b.fragSecondary[start:end]
}

func (b *Batch) execute(lane int, amino enzyme.Amino) {
	switch amino {
	case enzyme.AMINO_CUT:
		b.cut(lane)
	case enzyme.AMINO_DEL:
		b.delete(lane)
	case enzyme.AMINO_SWI:
		b.onSecond[lane] = !b.onSecond[lane]
	case enzyme.AMINO_MVR:
		b.move(lane, 1)
	case enzyme.AMINO_MVL:
		b.move(lane, -1)
	case enzyme.AMINO_COP:
		b.copying[lane] = true
		b.copyAt(lane, b.cursor[lane])
	case enzyme.AMINO_OFF:
		b.copying[lane] = false
	case enzyme.AMINO_INA, enzyme.AMINO_INC, enzyme.AMINO_ING, enzyme.AMINO_INT:
		ins, _ := amino.Insert()
		b.insert(lane, ins)
	case enzyme.AMINO_RPY, enzyme.AMINO_RPU, enzyme.AMINO_LPY, enzyme.AMINO_LPU:
		direction, purine, _ := amino.Search()
		b.search(lane, direction, purine)
	}
}

func (b *Batch) copyAt(lane int, index int) {
	if index < 0 || index >= b.length[lane] {
		return
	}
	primary, secondary := b.strand(lane)
	if primary[index].Valid() {
		secondary[index] = primary[index].Complement()
	}
}

func (b *Batch) move(lane int, delta int) {
	b.cursor[lane] += delta
	if b.copying[lane] && !b.onSecond[lane] {
		b.copyAt(lane, b.cursor[lane])
	}
}

func (b *Batch) insert(lane int, ins base.Base) {
	n := b.length[lane]
	if n >= b.capacity {
		b.flag(lane, OVERFLOW_STRAND)
		return
	}

	primary, secondary := b.strand(lane)
	at := b.cursor[lane] + 1
	copy(primary[at+1:n+1], primary[at:n])
	copy(secondary[at+1:n+1], secondary[at:n])

	if b.onSecond[lane] {
		primary[at] = base.BASE_NONE
		secondary[at] = ins
	} else {
		primary[at] = ins
		secondary[at] = base.BASE_NONE
	}

	b.length[lane] = n + 1
	b.cursor[lane] = at
}

func (b *Batch) delete(lane int) {
	primary, secondary := b.strand(lane)
	at := b.cursor[lane]

	if b.onSecond[lane] {
		secondary[at] = base.BASE_NONE
		return
	}

	n := b.length[lane]
	copy(primary[at:n-1], primary[at+1:n])
	copy(secondary[at:n-1], secondary[at+1:n])
	primary[n-1] = base.BASE_NONE
	secondary[n-1] = base.BASE_NONE
	b.length[lane] = n - 1
}

func (b *Batch) cut(lane int) {
	n := b.length[lane]
	split := b.cursor[lane] + 1
	if split >= n {
		return
	}

	primary, secondary := b.strand(lane)

	slot := b.fragCount[lane]
	if slot < b.slots {
		fragPrimary, fragSecondary := b.fragment(lane, slot)
		copy(fragPrimary, primary[split:n])
		copy(fragSecondary, secondary[split:n])
		b.fragLength[lane*b.slots+slot] = n - split
		b.fragCount[lane] = slot + 1
	} else {
		b.flag(lane, OVERFLOW_FRAGMENT)
	}

	clear(primary[split:n])
	clear(secondary[split:n])
	b.length[lane] = split
}

func (b *Batch) search(lane int, direction int, purine bool) {
	second := b.onSecond[lane]
	if second {
		direction = -direction
	}

	primary, secondary := b.strand(lane)
	n := b.length[lane]
	copying := b.copying[lane] && !second

	pos := b.cursor[lane] + direction
	for ; pos >= 0 && pos < n; pos += direction {
		if copying && primary[pos].Valid() {
			secondary[pos] = primary[pos].Complement()
		}

		found := primary[pos]
		if second {
			found = secondary[pos]
		}

		if (purine && found.IsPurine()) || (!purine && found.IsPyrimidine()) {
			break
		}
	}

	b.cursor[lane] = pos
}

// State returns a lane as a scalar execution state, for inspection and
// comparison with the machine package.
func (b *Batch) State(lane int) (state machine.State) {
	primary, secondary := b.strand(lane)

	state = machine.State{
		Strand:    toStrand(primary, secondary, b.length[lane]),
		Cursor:    b.cursor[lane],
		Secondary: b.onSecond[lane],
		Copy:      b.copying[lane],
		Pc:        b.pc[lane],
		Halt:      b.halt[lane],
	}

	for slot := range b.fragCount[lane] {
		fragPrimary, fragSecondary := b.fragment(lane, slot)
		state.Fragments = append(state.Fragments,
			toStrand(fragPrimary, fragSecondary, b.fragLength[lane*b.slots+slot]))
	}

	return
}

func toStrand(primary, secondary []base.Base, n int) (s machine.Strand) {
	s = make(machine.Strand, n)
	for i := range n {
		s[i] = machine.Cell{Primary: primary[i], Secondary: secondary[i]}
	}
	return
}

// Results returns the output strands of every lane, in lane order.
func (b *Batch) Results() (results [][]string) {
	results = make([][]string, b.lanes)
	for lane := range b.lanes {
		primary, secondary := b.strand(lane)
		n := b.length[lane]
		outputs := appendOutputs(nil, primary[:n], secondary[:n])
		for slot := range b.fragCount[lane] {
			fragPrimary, fragSecondary := b.fragment(lane, slot)
			m := b.fragLength[lane*b.slots+slot]
			outputs = appendOutputs(outputs, fragPrimary[:m], fragSecondary[:m])
		}
		results[lane] = outputs
	}
	return
}

// appendOutputs appends the primary bases and every reversed secondary run.
func appendOutputs(outputs []string, primary, secondary []base.Base) []string {
	if text := base.Format(primary); len(text) != 0 {
		outputs = append(outputs, text)
	}

	run := make([]byte, 0, len(secondary))
	for n := 0; n <= len(secondary); n++ {
		if n < len(secondary) && secondary[n].Valid() {
			run = append(run, secondary[n].Byte())
			continue
		}
		if len(run) != 0 {
			slices.Reverse(run)
			outputs = append(outputs, string(run))
			run = run[:0]
		}
	}

	return outputs
}
