package load

import (
	"errors"
	"testing"
	"time"
)

func TestLifecycle_Success(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	s := Initial(13)
	if s.Phase != Idle || s.Source != SourceSample || s.Records != 13 {
		t.Fatalf("Initial = %+v", s)
	}

	s = s.Start(now)
	if s.Phase != Loading || s.Records != 13 {
		t.Fatalf("Start = %+v", s)
	}

	s = s.Succeed(SourceLedger, 40, 2, now)
	if s.Phase != Loaded || s.Source != SourceLedger || s.Records != 40 || s.Rejected != 2 {
		t.Errorf("Succeed = %+v", s)
	}
	if s.Error != "" {
		t.Errorf("Error = %q", s.Error)
	}
}

func TestLifecycle_Failure(t *testing.T) {
	now := time.Now()
	s := Initial(13).Start(now).Fail(errors.New("connection refused"), SourceSample, 13, now)

	if s.Phase != Failed {
		t.Errorf("Phase = %q", s.Phase)
	}
	if s.Error != "connection refused" {
		t.Errorf("Error = %q", s.Error)
	}
	if s.Source != SourceSample || s.Records != 13 {
		t.Errorf("fallback = %s/%d", s.Source, s.Records)
	}
}

func TestStart_ClearsPreviousError(t *testing.T) {
	now := time.Now()
	s := Initial(1).Fail(errors.New("boom"), SourceSample, 1, now).Start(now)
	if s.Error != "" {
		t.Errorf("Error = %q, want empty", s.Error)
	}
}
