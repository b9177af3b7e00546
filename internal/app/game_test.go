package app

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"go-typeball/internal/assets"
	"go-typeball/internal/component"
	"go-typeball/internal/config"
	"go-typeball/internal/defs"
	"go-typeball/internal/event"
	"go-typeball/internal/input"
	"go-typeball/internal/keyboard"
	"go-typeball/internal/types"
)

const frame = 0.05

var rock = defs.Rect{X: 15, Y: 8, W: 2, H: 2}

func testLibrary() *defs.CourseLibrary {
	course := func(id, tier string) defs.CourseDefinition {
		return defs.CourseDefinition{ID: id, Tier: tier, Spawn: types.Vec2{X: 2, Y: 9}, Obstacles: []defs.Rect{rock}}
	}
	return &defs.CourseLibrary{
		Gates: [2]defs.GateDefinition{
			{Name: "top", Bounds: defs.Rect{X: 30, Y: 1, W: 1.5, H: 7}, Goal: true},
			{Name: "bottom", Bounds: defs.Rect{X: 30, Y: 10, W: 1.5, H: 7}},
		},
		Courses: []defs.CourseDefinition{course("e", "easy"), course("m", "medium"), course("h", "hard")},
	}
}

func testWords() []string {
	return []string{"cat", "dog", "sun", "tree", "house", "planet", "kitchen", "elephant", "chocolate", "television"}
}

func newTestGame(t *testing.T, mutate func(*config.Settings), wordList []string) (*Game, *input.Scripted) {
	t.Helper()
	s := config.Default()
	s.Seed = 7
	s.SwitchedControlsRate = 0
	if mutate != nil {
		mutate(&s)
	}
	in := input.NewScripted()
	g, err := New(Options{
		Settings: s,
		Content:  &assets.Content{Words: wordList, Courses: testLibrary()},
		Input:    in,
		Log:      zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g, in
}

// typeWord finishes the word through whichever path the scheme allows.
func typeWord(t *testing.T, g *Game, in *input.Scripted) {
	t.Helper()
	word := g.State().Progress.Word
	if g.Controls() == types.Switched {
		g.InputLetters(word)
	} else {
		in.Type(word)
	}
	if err := g.Tick(frame); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
}

func driveToGoal(t *testing.T, g *Game) {
	t.Helper()
	body, _ := g.World.Body(g.GoalGate().ID)
	g.World.MovePosition(g.ECS.Ball.ID, body.Bounds.Center())
	if err := g.Tick(frame); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
}

func driveInto(t *testing.T, g *Game, r defs.Rect) {
	t.Helper()
	g.World.MovePosition(g.ECS.Ball.ID, r.Center())
	if err := g.Tick(frame); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
}

func TestNewStartsFirstRound(t *testing.T) {
	g, _ := newTestGame(t, nil, testWords())
	st := g.State()
	if st.Phase != component.Playing || st.Round != 1 || st.Score != 0 {
		t.Fatalf("Expected playing round 1 with score 0, got %+v", st)
	}
	if st.Progress.Word == "" || st.Progress.Remaining != st.Progress.Word {
		t.Errorf("Expected a fresh word, got %+v", st.Progress)
	}
	if st.CourseID != "e" || st.Difficulty != types.Easy {
		t.Errorf("Expected the easy course, got %q at %v", st.CourseID, st.Difficulty)
	}
	if g.BallPosition() != (types.Vec2{X: 2, Y: 9}) {
		t.Errorf("Expected ball at spawn, got %v", g.BallPosition())
	}
}

func TestNewRejectsBadSettings(t *testing.T) {
	s := config.Default()
	s.BallSpeed = 0
	_, err := New(Options{Settings: s, Content: &assets.Content{Words: testWords(), Courses: testLibrary()}, Log: zerolog.Nop()})
	var cfgErr *types.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected ConfigurationError, got %v", err)
	}
}

func TestRoundNeedsBothWordAndCourse(t *testing.T) {
	g, in := newTestGame(t, nil, testWords())

	typeWord(t, g, in)
	if g.Score() != 0 || !g.State().Progress.WordComplete {
		t.Fatalf("Expected the word alone not to score, got score %d", g.Score())
	}

	driveToGoal(t, g)
	if g.Score() != 1 {
		t.Fatalf("Expected score 1, got %d", g.Score())
	}
	st := g.State()
	if st.Round != 2 || st.Progress.WordComplete || st.Progress.CourseComplete {
		t.Errorf("Expected flags reset for round 2, got %+v", st)
	}
	if g.BallPosition() != (types.Vec2{X: 2, Y: 9}) {
		t.Errorf("Expected ball back at spawn, got %v", g.BallPosition())
	}
}

func TestCourseFirstThenWord(t *testing.T) {
	g, in := newTestGame(t, nil, testWords())

	driveToGoal(t, g)
	if g.Score() != 0 || !g.CourseComplete() {
		t.Fatalf("Expected course complete without score, got %d", g.Score())
	}
	typeWord(t, g, in)
	if g.Score() != 1 {
		t.Errorf("Expected score 1, got %d", g.Score())
	}
}

func TestCompleteCourseIsIdempotent(t *testing.T) {
	g, in := newTestGame(t, nil, testWords())

	g.EventDispatcher.Emit(event.CompleteCourse, event.CoursePayload{})
	g.EventDispatcher.Emit(event.CompleteCourse, event.CoursePayload{})
	typeWord(t, g, in)
	if err := g.Tick(frame); err != nil {
		t.Fatal(err)
	}
	if g.Score() != 1 {
		t.Errorf("Expected score exactly 1, got %d", g.Score())
	}
}

func TestNonGoalGateIsInert(t *testing.T) {
	g, _ := newTestGame(t, nil, testWords())
	var other *component.Gate
	for _, gate := range g.gates.Gates() {
		if !gate.IsGoal() {
			other = gate
		}
	}
	body, _ := g.World.Body(other.ID)
	driveInto(t, g, body.Bounds)
	if g.CourseComplete() || !g.InPlay() {
		t.Errorf("Expected non-goal gate to do nothing")
	}
}

func TestGoalAlternatesEachRound(t *testing.T) {
	g, in := newTestGame(t, nil, testWords())
	var changes int
	g.EventDispatcher.SubscribeFunc(event.GoalChanged, func(event.Event) { changes++ })

	first := g.GoalGate().ID
	const rounds = 5
	for i := 0; i < rounds; i++ {
		typeWord(t, g, in)
		driveToGoal(t, g)
	}
	if g.Score() != rounds || g.GateFlips() != rounds {
		t.Fatalf("Expected %d points and flips, got %d and %d", rounds, g.Score(), g.GateFlips())
	}
	if changes != 2*rounds {
		t.Errorf("Expected %d GoalChanged events, got %d", 2*rounds, changes)
	}
	if g.GoalGate().ID == first {
		t.Errorf("Expected goal to be on the other gate after an odd number of rounds")
	}
	goals := 0
	for _, gate := range g.gates.Gates() {
		if gate.IsGoal() {
			goals++
		}
	}
	if goals != 1 {
		t.Errorf("Expected exactly one goal gate, got %d", goals)
	}
}

func TestNormalSchemeIgnoresAxes(t *testing.T) {
	g, in := newTestGame(t, nil, testWords())
	word := []rune(g.State().Progress.Word)

	in.Push(input.Frame{Chars: word[:1], Horizontal: 1, Vertical: 1})
	if err := g.Tick(frame); err != nil {
		t.Fatal(err)
	}
	if g.BallPosition() != (types.Vec2{X: 2, Y: 9}) {
		t.Errorf("Expected the ball not to move, got %v", g.BallPosition())
	}
	if g.State().Progress.Completed != string(word[:1]) {
		t.Errorf("Expected first letter typed, got %+v", g.State().Progress)
	}
}

func TestSwitchedSchemeIgnoresTyping(t *testing.T) {
	g, in := newTestGame(t, func(s *config.Settings) { s.SwitchedControlsRate = 1 }, testWords())
	if g.Controls() != types.Switched || !g.KeyboardVisible() {
		t.Fatalf("Expected Switched with the on-screen keyboard shown")
	}
	word := []rune(g.State().Progress.Word)

	in.Push(input.Frame{Chars: word, Horizontal: 1})
	if err := g.Tick(frame); err != nil {
		t.Fatal(err)
	}
	if g.State().Progress.Completed != "" {
		t.Errorf("Expected keyboard typing to be ignored, got %+v", g.State().Progress)
	}
	if g.BallPosition().X <= 2 {
		t.Errorf("Expected the ball to move right, got %v", g.BallPosition())
	}

	g.InputLetters(string(word[:2]))
	if g.State().Progress.Completed != string(word[:2]) {
		t.Errorf("Expected on-screen letters to count, got %+v", g.State().Progress)
	}
}

func TestInputLettersNeedsSwitched(t *testing.T) {
	g, _ := newTestGame(t, nil, testWords())
	g.InputLetters(g.State().Progress.Word)
	if g.State().Progress.Completed != "" {
		t.Errorf("Expected on-screen letters to be ignored in Normal")
	}
}

func TestMismatchIsNotFatalByDefault(t *testing.T) {
	g, in := newTestGame(t, nil, []string{"cat"})
	var wrong int
	g.EventDispatcher.SubscribeFunc(event.IncorrectLetter, func(event.Event) { wrong++ })

	in.Type("x")
	if err := g.Tick(frame); err != nil {
		t.Fatal(err)
	}
	if wrong != 1 || !g.InPlay() {
		t.Errorf("Expected one IncorrectLetter and play to continue")
	}
}

func TestStrictTypingFailsOnMismatch(t *testing.T) {
	g, in := newTestGame(t, func(s *config.Settings) { s.StrictTyping = true }, []string{"cat"})
	var over []event.FailPayload
	g.EventDispatcher.SubscribeFunc(event.GameOver, func(e event.Event) { over = append(over, e.Data.(event.FailPayload)) })

	in.Type("cxa")
	if err := g.Tick(frame); err != nil {
		t.Fatal(err)
	}
	if g.InPlay() || len(over) != 1 || over[0].Reason != "incorrect letter" {
		t.Fatalf("Expected a single game over for the wrong letter, got %+v", over)
	}
	if g.State().Progress.Completed != "c" {
		t.Errorf("Expected letters after the failure to be dropped, got %+v", g.State().Progress)
	}
}

func TestObstacleEndsGame(t *testing.T) {
	g, in := newTestGame(t, nil, testWords())
	driveInto(t, g, rock)
	if g.InPlay() || g.State().Phase != component.GameOver {
		t.Fatalf("Expected game over after hitting an obstacle")
	}
	if g.Controls() != types.Normal || !g.KeyboardVisible() {
		t.Errorf("Expected Normal controls with the keyboard shown after game over")
	}

	in.Type(g.State().Progress.Word)
	before := g.State()
	for i := 0; i < 3; i++ {
		if err := g.Tick(frame); err != nil {
			t.Fatal(err)
		}
	}
	g.EventDispatcher.Emit(event.CompleteCourse, event.CoursePayload{})
	if g.State() != before {
		t.Errorf("Expected game over to be terminal, %+v became %+v", before, g.State())
	}
	if g.DragStart(g.BallPosition()) {
		t.Errorf("Expected drag to be disabled after game over")
	}
}

func TestObstacleIgnoredOnceCourseComplete(t *testing.T) {
	g, _ := newTestGame(t, nil, testWords())
	driveToGoal(t, g)
	driveInto(t, g, rock)
	if !g.InPlay() {
		t.Errorf("Expected an obstacle after the goal not to fail the course")
	}
}

func TestWordLengthFollowsDifficulty(t *testing.T) {
	g, in := newTestGame(t, func(s *config.Settings) { s.RoundsPerDifficulty = 2 }, testWords())
	for i := 0; i < 8; i++ {
		limit := g.settings.MaxLength(g.Difficulty())
		if n := utf8.RuneCountInString(g.State().Progress.Word); limit > 0 && n > limit {
			t.Fatalf("Round %d: word of %d runes exceeds %d at %v", g.State().Round, n, limit, g.Difficulty())
		}
		typeWord(t, g, in)
		driveToGoal(t, g)
	}
	if g.Difficulty() != types.Hard {
		t.Errorf("Expected hard tier after 8 points, got %v", g.Difficulty())
	}
}

func TestDifficultyNeverDecreases(t *testing.T) {
	g, in := newTestGame(t, func(s *config.Settings) { s.RoundsPerDifficulty = 1 }, testWords())
	prev := g.Difficulty()
	for i := 0; i < 6; i++ {
		typeWord(t, g, in)
		driveToGoal(t, g)
		if g.Difficulty() < prev {
			t.Fatalf("Difficulty went from %v to %v", prev, g.Difficulty())
		}
		prev = g.Difficulty()
	}
}

func TestWordLimitRelaxesWhenNothingFits(t *testing.T) {
	g, _ := newTestGame(t, nil, []string{"extraordinary"})
	if g.State().Progress.Word != "extraordinary" {
		t.Errorf("Expected the long word once the limit is relaxed, got %q", g.State().Progress.Word)
	}
}

func TestEmptyWordBankIsExhausted(t *testing.T) {
	s := config.Default()
	_, err := New(Options{Settings: s, Content: &assets.Content{Courses: testLibrary()}, Input: input.NewScripted(), Log: zerolog.Nop()})
	var exhausted *types.ContentExhaustedError
	if !errors.As(err, &exhausted) {
		t.Errorf("Expected ContentExhaustedError, got %v", err)
	}
}

func TestDragCarriesBallToGoal(t *testing.T) {
	g, in := newTestGame(t, nil, testWords())
	if !g.DragStart(types.Vec2{X: 2, Y: 9}) {
		t.Fatalf("Expected to pick up the ball")
	}
	body, _ := g.World.Body(g.GoalGate().ID)
	g.DragTo(body.Bounds.Center())
	if err := g.Tick(frame); err != nil {
		t.Fatal(err)
	}
	if !g.CourseComplete() || g.Scene().Dragging {
		t.Fatalf("Expected the course complete and the ball dropped")
	}
	typeWord(t, g, in)
	if g.Score() != 1 {
		t.Errorf("Expected score 1, got %d", g.Score())
	}
}

func TestSceneListsWorld(t *testing.T) {
	g, _ := newTestGame(t, nil, testWords())
	sc := g.Scene()
	if len(sc.Gates) != 2 || len(sc.Obstacles) != 1 || sc.Obstacles[0].Bounds != rock {
		t.Errorf("Expected two gates and the rock, got %+v", sc)
	}
	if sc.Radius != config.BallRadius || sc.Size.X != config.WorldWidth {
		t.Errorf("Unexpected scene geometry %+v", sc)
	}
}

func TestFastDragCannotCrossWall(t *testing.T) {
	lib := testLibrary()
	wall := defs.Rect{X: 15, Y: 0, W: 1.5, H: 18}
	for i := range lib.Courses {
		lib.Courses[i].Obstacles = []defs.Rect{wall}
	}
	s := config.Default()
	s.Seed = 7
	s.SwitchedControlsRate = 0
	g, err := New(Options{Settings: s, Content: &assets.Content{Words: testWords(), Courses: lib}, Input: input.NewScripted(), Log: zerolog.Nop()})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !g.DragStart(g.BallPosition()) {
		t.Fatalf("Expected to pick up the ball")
	}
	body, _ := g.World.Body(g.GoalGate().ID)
	g.DragTo(body.Bounds.Center())
	if err := g.Tick(frame); err != nil {
		t.Fatal(err)
	}
	if g.InPlay() || g.CourseComplete() {
		t.Errorf("Expected the wall to end the game, got InPlay=%v CourseComplete=%v", g.InPlay(), g.CourseComplete())
	}
	if p := g.BallPosition(); p.X >= wall.X {
		t.Errorf("Expected the ball to stop before the wall, got %v", p)
	}
}

func TestOnScreenKeyboardCanTypeAnyBankWord(t *testing.T) {
	bank := []string{"Cat", "don't", "naïve"}
	g, _ := newTestGame(t, func(s *config.Settings) { s.SwitchedControlsRate = 1 }, bank)
	if g.Controls() != types.Switched {
		t.Fatalf("Expected switched controls")
	}

	layout := keyboard.NewLayout(keyboard.RowsFor(bank), 0, 0, 1, 1, 0)
	keys := make(map[rune]keyboard.Key)
	for _, k := range layout.Keys {
		keys[k.Rune] = k
	}
	word := g.State().Progress.Word
	for _, r := range word {
		k, ok := keys[r]
		if !ok {
			t.Fatalf("Expected a key for %q in %q", r, word)
		}
		got, ok := layout.HitTest(k.X+0.5, k.Y+0.5)
		if !ok {
			t.Fatalf("Expected a hit on %q", r)
		}
		g.InputLetters(string(got))
	}
	if p := g.State().Progress; !p.WordComplete || p.Completed != word {
		t.Errorf("Expected %q typed on screen, got %+v", word, p)
	}
}
