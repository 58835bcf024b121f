package buffer_test

import (
	"bytes"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/maretto/framebuf/buffer"
	"github.com/maretto/framebuf/cache"
	"github.com/maretto/framebuf/tftime"
	"github.com/maretto/framebuf/transform"
)

// recordingObserver counts outcomes for assertions.
type recordingObserver struct {
	mu       sync.Mutex
	accepted int
	rejected map[string]int
	lookups  map[bool]int
	waits    map[bool]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{
		rejected: make(map[string]int),
		lookups:  make(map[bool]int),
		waits:    make(map[bool]int),
	}
}

func (r *recordingObserver) OnIngest(accepted bool, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if accepted {
		r.accepted++
		return
	}
	r.rejected[reason]++
}

func (r *recordingObserver) OnLookup(ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups[ok]++
}

func (r *recordingObserver) OnWait(satisfied bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.waits[satisfied]++
}

// sample builds a unit-rotation stamped transform.
func sample(parent, child string, stamp tftime.Time, trans transform.Vector3) transform.TransformStamped {
	return transform.TransformStamped{
		Parent: parent,
		Child:  child,
		Stamp:  stamp,
		Transform: transform.Transform{
			Translation: trans,
			Rotation:    transform.Quaternion{W: 1},
		},
	}
}

// treeBatches returns the canonical robot snapshot at time sec as one
// static and one dynamic batch.
func treeBatches(sec float64) (static, dynamic []transform.TransformStamped) {
	stamp := tftime.FromSeconds(sec)
	static = []transform.TransformStamped{
		sample("world", "item", stamp, transform.Vector3{X: 1}),
		sample("base_link", "camera", stamp, transform.Vector3{X: 0.5}),
	}
	dynamic = []transform.TransformStamped{
		sample("world", "base_link", stamp, transform.Vector3{Y: sec}),
	}
	return static, dynamic
}

// BufferSuite exercises the concurrent shell end to end.
type BufferSuite struct {
	suite.Suite
}

func TestBufferSuite(t *testing.T) {
	suite.Run(t, new(BufferSuite))
}

// feedTree ingests the canonical tree at the given instants.
func (s *BufferSuite) feedTree(buf *buffer.Buffer, secs ...float64) {
	for _, sec := range secs {
		static, dynamic := treeBatches(sec)
		buf.Ingest(static, true)
		buf.Ingest(dynamic, false)
	}
}

// TestBasicLookup: the camera sees the item half a meter ahead.
func (s *BufferSuite) TestBasicLookup() {
	buf := buffer.New()
	s.feedTree(buf, 0)

	got, err := buf.Lookup("camera", "item", tftime.Zero)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "camera", got.Parent)
	require.Equal(s.T(), "item", got.Child)
	require.InDelta(s.T(), 0.5, got.Transform.Translation.X, 1e-9)
	require.InDelta(s.T(), 0, got.Transform.Translation.Y, 1e-9)
}

// TestInterpolatedLookup: at 0.7s the base has driven 0.7m along +y.
func (s *BufferSuite) TestInterpolatedLookup() {
	buf := buffer.New()
	s.feedTree(buf, 0, 1)

	got, err := buf.Lookup("camera", "item", tftime.FromSeconds(0.7))
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.5, got.Transform.Translation.X, 1e-9)
	require.InDelta(s.T(), -0.7, got.Transform.Translation.Y, 1e-9)
	require.InDelta(s.T(), 0, got.Transform.Translation.Z, 1e-9)
}

// TestTimeTravel: the camera's displacement between 0.7s and 0.4s,
// fixed in the item frame.
func (s *BufferSuite) TestTimeTravel() {
	buf := buffer.New()
	s.feedTree(buf, 0, 1)

	got, err := buf.LookupTimeTravel(
		"camera", tftime.FromSeconds(0.4),
		"camera", tftime.FromSeconds(0.7),
		"item", tftime.Duration{Sec: 1},
	)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0, got.Transform.Translation.X, 1e-9)
	require.InDelta(s.T(), 0.3, got.Transform.Translation.Y, 1e-9)
	require.Equal(s.T(), "camera", got.Parent)
	require.Equal(s.T(), "camera", got.Child)
}

// TestBatchSurvivesRejections: bad samples are dropped and diagnosed,
// good samples in the same batch still land.
func (s *BufferSuite) TestBatchSurvivesRejections() {
	var logged bytes.Buffer
	obs := newRecordingObserver()
	buf := buffer.New(
		buffer.WithLogger(zerolog.New(&logged)),
		buffer.WithObserver(obs),
	)

	nan := sample("world", "lidar", tftime.Time{Sec: 1}, transform.Vector3{X: math.NaN()})
	selfRef := sample("world", "world", tftime.Time{Sec: 1}, transform.Vector3{})
	good := sample("world", "base_link", tftime.Time{Sec: 1}, transform.Vector3{X: 2})

	buf.Ingest([]transform.TransformStamped{nan, selfRef, good}, false)

	got, err := buf.Lookup("base_link", "world", tftime.Time{Sec: 1})
	require.NoError(s.T(), err, "good sample must survive its batch")
	require.InDelta(s.T(), -2, got.Transform.Translation.X, 1e-9)

	require.Equal(s.T(), 1, obs.accepted)
	require.Equal(s.T(), 1, obs.rejected[buffer.ReasonNaNInput])
	require.Equal(s.T(), 1, obs.rejected[buffer.ReasonSelfParent])

	log := logged.String()
	require.Contains(s.T(), log, buffer.ReasonNaNInput)
	require.Contains(s.T(), log, buffer.ReasonSelfParent)
	require.Contains(s.T(), log, `"child":"lidar"`)
}

// TestRejectionReasons: each refusal class maps to its diagnostic code.
func (s *BufferSuite) TestRejectionReasons() {
	obs := newRecordingObserver()
	buf := buffer.New(buffer.WithObserver(obs))

	base := sample("world", "base_link", tftime.Time{Sec: 60}, transform.Vector3{})
	buf.Ingest([]transform.TransformStamped{base}, false)

	// Duplicate stamp.
	buf.Ingest([]transform.TransformStamped{base}, false)
	require.Equal(s.T(), 1, obs.rejected[buffer.ReasonRepeatedData])

	// Past the retention window behind the newest sample.
	old := sample("world", "base_link", tftime.Time{Sec: 10}, transform.Vector3{})
	buf.Ingest([]transform.TransformStamped{old}, false)
	require.Equal(s.T(), 1, obs.rejected[buffer.ReasonOldData])

	// Variant conflict on an existing timed edge.
	variant := sample("world", "base_link", tftime.Time{Sec: 61}, transform.Vector3{})
	buf.Ingest([]transform.TransformStamped{variant}, true)
	require.Equal(s.T(), 1, obs.rejected[buffer.ReasonInvalidData])
}

// TestCacheWindowOption: a narrow window ages samples out quickly.
func (s *BufferSuite) TestCacheWindowOption() {
	buf := buffer.New(buffer.WithCacheWindow(tftime.Duration{Sec: 2}))

	buf.Ingest([]transform.TransformStamped{
		sample("world", "base_link", tftime.Time{Sec: 10}, transform.Vector3{}),
		sample("world", "base_link", tftime.Time{Sec: 14}, transform.Vector3{}),
	}, false)

	_, err := buf.Lookup("base_link", "world", tftime.Time{Sec: 10})
	require.ErrorIs(s.T(), err, cache.ErrLookupInPast, "10s must have aged out of a 2s window ending at 14s")
}

// TestCanTransform_Immediate answers without waiting when data exists.
func (s *BufferSuite) TestCanTransform_Immediate() {
	buf := buffer.New()
	s.feedTree(buf, 0, 1)

	ok, err := buf.CanTransform("camera", "item", tftime.FromSeconds(0.5), tftime.Duration{})
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
}

// TestCanTransform_NonWaitableError: refusals new data cannot fix
// return as errors immediately.
func (s *BufferSuite) TestCanTransform_NonWaitableError() {
	buf := buffer.New()
	s.feedTree(buf, 0)

	_, err := buf.CanTransform("camera", "nowhere", tftime.Zero, tftime.Duration{Sec: 1})
	require.Error(s.T(), err)
}

// TestCanTransform_Timeout: a future-dated query with no producer
// returns false, not an error, once the timeout lapses.
func (s *BufferSuite) TestCanTransform_Timeout() {
	buf := buffer.New()
	s.feedTree(buf, 0, 1)

	start := time.Now()
	ok, err := buf.CanTransform("camera", "item", tftime.FromSeconds(5),
		tftime.DurationFromStd(50*time.Millisecond))
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
	require.GreaterOrEqual(s.T(), time.Since(start), 50*time.Millisecond)
}

// TestCanTransform_WakesOnIngest: a waiter parks until the batch that
// satisfies it arrives.
func (s *BufferSuite) TestCanTransform_WakesOnIngest() {
	buf := buffer.New()
	s.feedTree(buf, 0, 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		time.Sleep(30 * time.Millisecond)
		static, dynamic := treeBatches(5)
		buf.Ingest(static, true)
		buf.Ingest(dynamic, false)
	}()

	ok, err := buf.CanTransform("camera", "item", tftime.FromSeconds(5),
		tftime.DurationFromStd(2*time.Second))
	<-done
	require.NoError(s.T(), err)
	require.True(s.T(), ok, "waiter must wake when the 5s batch lands")
}

// TestConcurrentReadersAndWriter: readers run against a live writer
// without torn observations (run with -race).
func (s *BufferSuite) TestConcurrentReadersAndWriter() {
	buf := buffer.New()
	s.feedTree(buf, 0)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for sec := 1; sec <= 40; sec++ {
			static, dynamic := treeBatches(float64(sec) * 0.1)
			buf.Ingest(static, true)
			buf.Ingest(dynamic, false)
		}
		close(stop)
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				got, err := buf.Lookup("camera", "item", tftime.Zero)
				if err != nil {
					continue
				}
				// x is pinned by static edges; only y varies with time.
				if math.Abs(got.Transform.Translation.X-0.5) > 1e-9 {
					s.T().Errorf("torn read: X = %v", got.Transform.Translation.X)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// TestFrames lists the materialized frames.
func (s *BufferSuite) TestFrames() {
	buf := buffer.New()
	s.feedTree(buf, 0)
	require.Equal(s.T(), []string{"base_link", "camera", "item", "world"}, buf.Frames())
}

// TestLookupObserverOutcomes mirrors query outcomes to the observer.
func TestLookupObserverOutcomes(t *testing.T) {
	obs := newRecordingObserver()
	buf := buffer.New(buffer.WithObserver(obs))

	buf.Ingest([]transform.TransformStamped{
		sample("world", "base_link", tftime.Time{Sec: 1}, transform.Vector3{}),
	}, false)

	if _, err := buf.Lookup("base_link", "world", tftime.Time{Sec: 1}); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if _, err := buf.Lookup("base_link", "ghost", tftime.Zero); err == nil {
		t.Fatal("expected a failing lookup")
	}

	if obs.lookups[true] != 1 || obs.lookups[false] != 1 {
		t.Errorf("lookup outcomes = %v; want one ok, one error", obs.lookups)
	}
}

// TestEmptyBatchIsNoOp: no locks, no broadcasts, no counters.
func TestEmptyBatchIsNoOp(t *testing.T) {
	obs := newRecordingObserver()
	buf := buffer.New(buffer.WithObserver(obs))
	buf.Ingest(nil, false)
	buf.Ingest([]transform.TransformStamped{}, true)
	if obs.accepted != 0 || len(obs.rejected) != 0 {
		t.Errorf("empty batches touched the observer: %+v", obs)
	}
}

// TestLogIncludesStamp: the rejection diagnostic names the stamp of
// the offending sample.
func TestLogIncludesStamp(t *testing.T) {
	var logged bytes.Buffer
	buf := buffer.New(buffer.WithLogger(zerolog.New(&logged)))

	dup := sample("world", "base_link", tftime.Time{Sec: 7, NSec: 5}, transform.Vector3{})
	buf.Ingest([]transform.TransformStamped{dup}, false)
	buf.Ingest([]transform.TransformStamped{dup}, false)

	if !strings.Contains(logged.String(), "7.000000005") {
		t.Errorf("log %q does not carry the sample stamp", logged.String())
	}
}
