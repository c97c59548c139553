package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestStageTimerRecordsRunAndDuration(t *testing.T) {
	s := New()

	stop := s.StageTimer("compile")
	stop()

	var buf bytes.Buffer
	s.WritePrometheus(&buf)

	out := buf.String()
	if !strings.Contains(out, `symbiotic_stage_runs_total{stage="compile"}`) {
		t.Fatalf("WritePrometheus() output missing stage_runs_total metric, got:\n%s", out)
	}
	if !strings.Contains(out, `symbiotic_stage_duration_seconds{stage="compile"}`) {
		t.Fatalf("WritePrometheus() output missing stage_duration_seconds metric, got:\n%s", out)
	}
}

func TestStageTimerSeparatesStages(t *testing.T) {
	s := New()

	s.StageTimer("compile")()
	s.StageTimer("slice")()
	s.StageTimer("slice")()

	var buf bytes.Buffer
	s.WritePrometheus(&buf)

	out := buf.String()
	if !strings.Contains(out, `stage="compile"`) || !strings.Contains(out, `stage="slice"`) {
		t.Fatalf("expected both stage labels present, got:\n%s", out)
	}
	if !strings.Contains(out, `symbiotic_stage_runs_total{stage="slice"}`) {
		t.Fatalf("expected a run counter for stage slice, got:\n%s", out)
	}
}
