package musicxml

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/jacques-menu/musicformats-sub010/core/msr"
	"github.com/jacques-menu/musicformats-sub010/core/rational"
	"github.com/jacques-menu/musicformats-sub010/internal/logging"
)

// partBuilder turns the measures of one part into the voices of its
// staves. Each measure is read in document order into one MSR measure per
// voice, then the measures are handed over to the voices together with
// the repeat and ending events of the bar lines.
type partBuilder struct {
	ctx  *msr.Context
	part *msr.Part

	divisions int
	number    string
	inMeasure bool

	voices   []*voiceState
	byNumber map[int]*voiceState

	// groups read for a staff none of whose voices has appeared yet
	pendingGroups map[int]*msr.ClefKeyTimeSignatureGroup

	left, right []barEvent
}

// barEvent is a repeat or ending event, replayed on every voice.
type barEvent func(v *msr.Voice) error

func newPartBuilder(ctx *msr.Context, part *msr.Part) *partBuilder {
	return &partBuilder{
		ctx:           ctx,
		part:          part,
		byNumber:      make(map[int]*voiceState),
		pendingGroups: make(map[int]*msr.ClefKeyTimeSignatureGroup),
	}
}

// staff returns staff number of the part, created if needed.
func (pb *partBuilder) staff(line, number int) *msr.Staff {
	if st := pb.part.Staff(number); st != nil {
		return st
	}
	st := msr.NewStaff(line, number)
	pb.part.AppendStaff(st)
	return st
}

// voiceFor returns voice number, creating it in staff staffNumber on
// first use. A voice created late starts with the clef, key and time in
// effect on its staff.
func (pb *partBuilder) voiceFor(line, number, staffNumber int) *voiceState {
	if vs := pb.byNumber[number]; vs != nil {
		return vs
	}
	st := pb.staff(line, staffNumber)
	v := msr.NewVoice(line, number, pb.ctx)
	st.AppendVoice(v)
	vs := &voiceState{pb: pb, voice: v, staffNumber: staffNumber}
	pb.voices = append(pb.voices, vs)
	pb.byNumber[number] = vs

	if pb.inMeasure {
		vs.startMeasure(line, pb.number)
	}
	if g := pb.pendingGroups[staffNumber]; g != nil {
		delete(pb.pendingGroups, staffNumber)
		vs.append(g)
	} else if st.CurrentClef() != nil || st.CurrentKey() != nil || st.CurrentTimeSignature() != nil {
		g := msr.NewClefKeyTimeSignatureGroup(line, nil, nil, nil)
		if c := st.CurrentClef(); c != nil {
			g.SetClef(c.Clone())
		}
		if k := st.CurrentKey(); k != nil {
			g.SetKey(k.Clone())
		}
		if ts := st.CurrentTimeSignature(); ts != nil {
			g.SetTimeSignature(ts.Clone())
		}
		vs.append(g)
	}
	return vs
}

// voiceOf returns the voice named by the voice and staff children of n,
// both 1 by default.
func (pb *partBuilder) voiceOf(n *xmlquery.Node) *voiceState {
	return pb.voiceFor(n.LineNumber, integer(n, "voice", 1), integer(n, "staff", 1))
}

func (pb *partBuilder) measure(m *xmlquery.Node) error {
	line := m.LineNumber
	pb.number = m.SelectAttr("number")
	pb.inMeasure = true
	pb.left, pb.right = nil, nil
	for _, vs := range pb.voices {
		vs.startMeasure(line, pb.number)
	}

	for _, el := range elements(m) {
		var err error
		switch el.Data {
		case "attributes":
			pb.attributes(el)
		case "note":
			err = pb.note(el)
		case "backup":
			pb.flushAll()
		case "forward":
			pb.forward(el)
		case "direction":
			pb.direction(el)
		case "barline":
			pb.barline(el)
		case "print":
			pb.print(el)
		default:
			logging.Debug("skipping MusicXML element", "element", el.Data, "line", el.LineNumber)
		}
		if err != nil {
			return err
		}
	}

	for _, vs := range pb.voices {
		if err := vs.endMeasure(line); err != nil {
			return err
		}
	}
	return nil
}

func (pb *partBuilder) flushAll() {
	for _, vs := range pb.voices {
		vs.flush()
	}
}

// finish completes the voices once all measures are read.
func (pb *partBuilder) finish(line int) error {
	if len(pb.part.Staves()) == 0 {
		pb.staff(line, 1)
	}
	for _, vs := range pb.voices {
		if len(vs.dynamics)+len(vs.words) > 0 {
			pb.ctx.Warn(line, "voice %s ends with directions not attached to any note", vs.voice.Path())
		}
		if err := vs.voice.Finalize(line); err != nil {
			return err
		}
	}
	return nil
}

func (pb *partBuilder) attributes(el *xmlquery.Node) {
	line := el.LineNumber
	if d := integer(el, "divisions", 0); d > 0 {
		pb.divisions = d
	}
	for i := 1; i <= integer(el, "staves", 0); i++ {
		pb.staff(line, i)
	}

	groups := make(map[int]*msr.ClefKeyTimeSignatureGroup)
	groupFor := func(staffNumber int) *msr.ClefKeyTimeSignatureGroup {
		g := groups[staffNumber]
		if g == nil {
			g = msr.NewClefKeyTimeSignatureGroup(line, nil, nil, nil)
			groups[staffNumber] = g
		}
		return g
	}
	// members without a number apply to every staff
	each := func(n *xmlquery.Node, set func(g *msr.ClefKeyTimeSignatureGroup)) {
		if number := attrInt(n, "number", 0); number > 0 {
			set(groupFor(number))
			return
		}
		staves := pb.part.Staves()
		if len(staves) == 0 {
			staves = []*msr.Staff{pb.staff(line, 1)}
		}
		for _, st := range staves {
			set(groupFor(st.Number()))
		}
	}

	for _, kn := range childrenNamed(el, "key") {
		key := msr.NewKey(kn.LineNumber, integer(kn, "fifths", 0), modeOf(text(kn, "mode")))
		each(kn, func(g *msr.ClefKeyTimeSignatureGroup) { g.SetKey(key.Clone()) })
	}
	for _, tn := range childrenNamed(el, "time") {
		ts := timeSignature(tn)
		each(tn, func(g *msr.ClefKeyTimeSignatureGroup) { g.SetTimeSignature(ts.Clone()) })
	}
	for _, cn := range childrenNamed(el, "clef") {
		kind, ok := msr.ClefKindFromSign(text(cn, "sign"), integer(cn, "line", 0), integer(cn, "clef-octave-change", 0))
		if !ok {
			pb.ctx.Warn(cn.LineNumber, "clef %q on line %s is not supported, ignoring it", text(cn, "sign"), text(cn, "line"))
			continue
		}
		number := attrInt(cn, "number", 1)
		groupFor(number).SetClef(msr.NewClef(cn.LineNumber, kind, number))
	}

	for _, staffNumber := range slices.Sorted(maps.Keys(groups)) {
		pb.placeGroup(staffNumber, groups[staffNumber])
	}
}

// placeGroup appends g to the current measure of each voice of the staff,
// or keeps it for the first voice to come.
func (pb *partBuilder) placeGroup(staffNumber int, g *msr.ClefKeyTimeSignatureGroup) {
	pb.staff(g.InputLineNumber(), staffNumber).RegisterGroup(g)
	placed := false
	for _, vs := range pb.voices {
		if vs.staffNumber != staffNumber {
			continue
		}
		if placed {
			vs.append(g.DeepClone())
			continue
		}
		vs.append(g)
		placed = true
	}
	if !placed {
		pb.pendingGroups[staffNumber] = g
	}
}

func modeOf(s string) msr.ModeKind {
	switch s {
	case "major":
		return msr.ModeMajor
	case "minor":
		return msr.ModeMinor
	default:
		return msr.ModeNone
	}
}

func timeSignature(tn *xmlquery.Node) *msr.TimeSignature {
	symbol := msr.TimeSymbolFromString(tn.SelectAttr("symbol"))
	if child(tn, "senza-misura") != nil {
		return msr.NewTimeSignature(tn.LineNumber, msr.TimeSymbolSenzaMisura)
	}
	beats := childrenNamed(tn, "beats")
	beatTypes := childrenNamed(tn, "beat-type")
	var items []msr.TimeSignatureItem
	for i := range min(len(beats), len(beatTypes)) {
		var numbers []int
		for _, s := range strings.Split(strings.TrimSpace(beats[i].InnerText()), "+") {
			if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
				numbers = append(numbers, n)
			}
		}
		value, _ := strconv.Atoi(strings.TrimSpace(beatTypes[i].InnerText()))
		items = append(items, msr.TimeSignatureItem{BeatsNumbers: numbers, BeatValue: value})
	}
	return msr.NewTimeSignature(tn.LineNumber, symbol, items...)
}

// barline appends the bar line to every voice and records its repeat and
// ending events: those of a left bar line come before the measure, the
// others after it.
func (pb *partBuilder) barline(el *xmlquery.Node) {
	line := el.LineNumber
	location := msr.BarLineLocationRight
	switch el.SelectAttr("location") {
	case "left":
		location = msr.BarLineLocationLeft
	case "middle":
		location = msr.BarLineLocationMiddle
	}
	spec := msr.BarLineSpec{Location: location, Style: msr.BarLineStyleFromString(text(el, "bar-style"))}

	if rn := child(el, "repeat"); rn != nil {
		switch rn.SelectAttr("direction") {
		case "forward":
			spec.RepeatDirection = msr.RepeatDirectionForward
			pb.left = append(pb.left, func(v *msr.Voice) error { return v.HandleRepeatStart(line) })
		case "backward":
			spec.RepeatDirection = msr.RepeatDirectionBackward
			spec.Times = attrInt(rn, "times", 2)
			times := spec.Times
			pb.right = append(pb.right, func(v *msr.Voice) error { return v.HandleRepeatEnd(line, times) })
		}
	}

	if en := child(el, "ending"); en != nil {
		number := en.SelectAttr("number")
		switch en.SelectAttr("type") {
		case "start":
			pb.left = append(pb.left, func(v *msr.Voice) error { return v.HandleEndingStart(line, number) })
		case "stop":
			pb.right = append(pb.right, func(v *msr.Voice) error { return v.HandleEndingEnd(line, msr.EndingHooked) })
		case "discontinue":
			pb.right = append(pb.right, func(v *msr.Voice) error { return v.HandleEndingEnd(line, msr.EndingHookless) })
		}
	}

	for _, vs := range pb.voices {
		vs.append(msr.NewBarLine(line, spec))
	}
}

// print ends the previous measure of every voice with a line or page
// break.
func (pb *partBuilder) print(el *xmlquery.Node) {
	line := el.LineNumber
	for _, vs := range pb.voices {
		if vs.previous == nil {
			continue
		}
		switch {
		case el.SelectAttr("new-page") == "yes":
			vs.previous.AppendElement(msr.NewPageBreak(line))
		case el.SelectAttr("new-system") == "yes":
			vs.previous.AppendElement(msr.NewLineBreak(line, pb.number))
		}
	}
}

// direction reads dynamics and words, kept for the next note of the
// voice, and metronome and rehearsal marks, appended at once.
func (pb *partBuilder) direction(el *xmlquery.Node) {
	line := el.LineNumber
	vs := pb.voiceOf(el)
	placement := msr.PlacementNone
	switch el.SelectAttr("placement") {
	case "above":
		placement = msr.PlacementAbove
	case "below":
		placement = msr.PlacementBelow
	}

	var (
		words []string
		tempo *msr.TempoSpec
	)
	for _, dt := range childrenNamed(el, "direction-type") {
		for _, c := range elements(dt) {
			switch c.Data {
			case "dynamics":
				vs.dynamics = append(vs.dynamics, dynamics(c, placement)...)
			case "words":
				if w := strings.TrimSpace(c.InnerText()); w != "" {
					words = append(words, w)
				}
			case "metronome":
				unit, _ := msr.DurationKindFromString(text(c, "beat-unit"))
				tempo = &msr.TempoSpec{
					Kind:         msr.TempoPerMinute,
					BeatUnit:     unit,
					BeatUnitDots: len(childrenNamed(c, "beat-unit-dot")),
					PerMinute:    text(c, "per-minute"),
				}
			case "rehearsal":
				vs.append(msr.NewRehearsalMark(c.LineNumber, strings.TrimSpace(c.InnerText())))
			default:
				logging.Debug("skipping MusicXML direction", "element", c.Data, "line", c.LineNumber)
			}
		}
	}

	if tempo == nil {
		if sound := child(el, "sound"); sound != nil && sound.SelectAttr("tempo") != "" {
			tempo = &msr.TempoSpec{Kind: msr.TempoPerMinute, BeatUnit: msr.DurationQuarter, PerMinute: sound.SelectAttr("tempo")}
		}
	}
	if tempo != nil {
		tempo.Words = strings.Join(words, " ")
		vs.append(msr.NewTempo(line, *tempo))
		return
	}
	for _, w := range words {
		vs.words = append(vs.words, msr.NewWords(line, w, placement))
	}
}

func dynamics(n *xmlquery.Node, placement msr.PlacementKind) []*msr.Dynamic {
	var result []*msr.Dynamic
	for _, d := range elements(n) {
		kind, ok := msr.DynamicKindFromString(d.Data)
		if !ok {
			logging.Debug("skipping MusicXML dynamics", "element", d.Data, "line", d.LineNumber)
			continue
		}
		result = append(result, msr.NewDynamic(d.LineNumber, kind, placement))
	}
	return result
}

// forward becomes a skip in its voice.
func (pb *partBuilder) forward(el *xmlquery.Node) {
	vs := pb.voiceOf(el)
	length := pb.wholeNotes(integer(el, "duration", 0))
	if length.IsZero() {
		return
	}
	kind, dots, _ := msr.DurationKindFromWholeNotes(length)
	vs.flush()
	vs.measure.AppendElement(msr.NewNote(el.LineNumber, msr.NoteSpec{
		Kind: msr.NoteSkip, Duration: kind, Dots: dots, SoundingWholeNotes: length,
	}))
}

// wholeNotes converts a duration in divisions, zero when divisions are
// unknown.
func (pb *partBuilder) wholeNotes(duration int) rational.Rational {
	if duration <= 0 || pb.divisions <= 0 {
		return rational.Zero
	}
	return rational.New(int64(duration), int64(4*pb.divisions))
}
