// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package frametimer

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestDefaultBudgetsUnlimited(t *testing.T) {
	clk := &fakeClock{t: time.Unix(100, 0)}
	timer := New(WithClock(clk.now))
	clk.advance(time.Hour)

	for s := Section(0); s < numSections; s++ {
		if timer.IsTimeBudgetExceededForSection(s) {
			t.Errorf("IsTimeBudgetExceededForSection(%v) = true with unlimited budget", s)
		}
		if got := timer.SectionTimeBudget(s); got != Unlimited {
			t.Errorf("SectionTimeBudget(%v) = %v, want Unlimited", s, got)
		}
	}
}

func TestBudgetMeasuredFromFrameStart(t *testing.T) {
	clk := &fakeClock{t: time.Unix(100, 0)}
	timer := New(WithClock(clk.now), WithBudget(SectionOffscreenBufferRender, 10*time.Millisecond))

	tests := []struct {
		advance time.Duration
		want    bool
	}{
		{0, false},
		{9 * time.Millisecond, false},
		{time.Millisecond, true},
		{5 * time.Millisecond, true},
	}
	for _, tt := range tests {
		clk.advance(tt.advance)
		if got := timer.IsTimeBudgetExceededForSection(SectionOffscreenBufferRender); got != tt.want {
			t.Errorf("after %v elapsed: exceeded = %v, want %v", timer.Elapsed(), got, tt.want)
		}
	}

	timer.StartFrame()
	if timer.IsTimeBudgetExceededForSection(SectionOffscreenBufferRender) {
		t.Error("budget exceeded right after StartFrame")
	}
	if !timer.FrameStart().Equal(clk.t) {
		t.Errorf("FrameStart() = %v, want %v", timer.FrameStart(), clk.t)
	}
}

func TestZeroBudgetAlwaysExceeded(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	timer := New(WithClock(clk.now))
	timer.SetSectionTimeBudget(SectionOffscreenBufferRender, -time.Second)

	if got := timer.SectionTimeBudget(SectionOffscreenBufferRender); got != 0 {
		t.Errorf("negative budget stored as %v, want 0", got)
	}
	if !timer.IsTimeBudgetExceededForSection(SectionOffscreenBufferRender) {
		t.Error("zero budget not reported as exceeded")
	}
	if timer.IsTimeBudgetExceededForSection(SectionSceneActionsApply) {
		t.Error("other section affected by budget change")
	}
}

func TestUnknownSectionPanics(t *testing.T) {
	timer := New()
	defer func() {
		if recover() == nil {
			t.Error("SetSectionTimeBudget() with unknown section did not panic")
		}
	}()
	timer.SetSectionTimeBudget(numSections, time.Second)
}

func TestSectionString(t *testing.T) {
	if got := SectionOffscreenBufferRender.String(); got != "OffscreenBufferRender" {
		t.Errorf("String() = %q, want OffscreenBufferRender", got)
	}
	if got := Section(42).String(); got != "Section(42)" {
		t.Errorf("String() = %q, want Section(42)", got)
	}
}
