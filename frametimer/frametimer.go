// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package frametimer tracks per-frame time budgets of renderer sections.
//
// Every budget is measured from the start of the frame, not from the start
// of the section: a section whose budget is 8ms is exhausted once 8ms have
// passed since StartFrame, regardless of how long earlier sections took.
package frametimer

import (
	"fmt"
	"math"
	"time"
)

// Section identifies a renderer phase with its own time budget.
type Section uint8

const (
	// SectionSceneResourcesUpload covers uploading scene-owned resources.
	SectionSceneResourcesUpload Section = iota
	// SectionClientResourcesUpload covers uploading shared client resources.
	SectionClientResourcesUpload
	// SectionSceneActionsApply covers applying queued scene changes.
	SectionSceneActionsApply
	// SectionOffscreenBufferRender covers rendering scenes mapped to
	// interruptible offscreen buffers.
	SectionOffscreenBufferRender

	numSections
)

var sectionNames = [...]string{
	SectionSceneResourcesUpload:  "SceneResourcesUpload",
	SectionClientResourcesUpload: "ClientResourcesUpload",
	SectionSceneActionsApply:     "SceneActionsApply",
	SectionOffscreenBufferRender: "OffscreenBufferRender",
}

// String returns the section name.
func (s Section) String() string {
	if int(s) < len(sectionNames) {
		return sectionNames[s]
	}
	return fmt.Sprintf("Section(%d)", uint8(s))
}

// Unlimited is the budget of a section that never runs out.
const Unlimited = time.Duration(math.MaxInt64)

// Clock returns the current time. It is replaceable for tests.
type Clock func() time.Time

// Timer measures elapsed frame time against per-section budgets.
//
// The zero Timer is not usable; create one with New.
// Timer is not safe for concurrent use.
type Timer struct {
	now        Clock
	frameStart time.Time
	budgets    [numSections]time.Duration
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(t *Timer) {
		if c != nil {
			t.now = c
		}
	}
}

// WithBudget sets the initial budget of a section.
func WithBudget(s Section, d time.Duration) Option {
	return func(t *Timer) {
		t.SetSectionTimeBudget(s, d)
	}
}

// New creates a timer with unlimited budgets for all sections. The frame is
// considered started at creation.
func New(opts ...Option) *Timer {
	t := &Timer{now: time.Now}
	for i := range t.budgets {
		t.budgets[i] = Unlimited
	}
	for _, opt := range opts {
		opt(t)
	}
	t.frameStart = t.now()
	return t
}

// StartFrame marks the beginning of a new frame.
func (t *Timer) StartFrame() {
	t.frameStart = t.now()
}

// FrameStart returns the time of the last StartFrame.
func (t *Timer) FrameStart() time.Time {
	return t.frameStart
}

// Elapsed returns the time since the last StartFrame.
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.frameStart)
}

// SetSectionTimeBudget sets the budget of s, measured from frame start.
// A negative budget is treated as zero.
func (t *Timer) SetSectionTimeBudget(s Section, d time.Duration) {
	if s >= numSections {
		panic(fmt.Sprintf("frametimer: unknown section %d", uint8(s)))
	}
	t.budgets[s] = max(d, 0)
}

// SectionTimeBudget returns the budget of s.
func (t *Timer) SectionTimeBudget(s Section) time.Duration {
	if s >= numSections {
		panic(fmt.Sprintf("frametimer: unknown section %d", uint8(s)))
	}
	return t.budgets[s]
}

// IsTimeBudgetExceededForSection reports whether the time since frame start
// has reached the budget of s. An unlimited budget is never exceeded.
func (t *Timer) IsTimeBudgetExceededForSection(s Section) bool {
	budget := t.SectionTimeBudget(s)
	if budget == Unlimited {
		return false
	}
	return t.Elapsed() >= budget
}
