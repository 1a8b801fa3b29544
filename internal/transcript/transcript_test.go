package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleVTT = `WEBVTT
Kind: captions
Language: en

00:00:00.160 --> 00:00:02.350 align:start position:0%
welcome<00:00:01.120><c> to</c><00:00:01.400><c> the</c> talk

00:00:02.350 --> 00:00:05.000
today we cover the introduction

00:00:05.000 --> 00:00:09.500
and then a quick demo of the system
`

const sampleSRT = `1
00:00:01,000 --> 00:00:04,000
First subtitle line
continues here

2
00:00:04,500 --> 00:00:08,000
Second subtitle
`

func TestParseVTT(t *testing.T) {
	cues := ParseVTT(sampleVTT)

	if len(cues) != 3 {
		t.Fatalf("got %d cues, want 3", len(cues))
	}
	if cues[0].Start != 160*time.Millisecond {
		t.Errorf("cues[0].Start = %v", cues[0].Start)
	}
	if cues[0].Text != "welcome to the talk" {
		t.Errorf("cues[0].Text = %q, want inline tags stripped", cues[0].Text)
	}
	if cues[1].Text != "today we cover the introduction" {
		t.Errorf("cues[1].Text = %q", cues[1].Text)
	}
	if cues[2].End != 9*time.Second+500*time.Millisecond {
		t.Errorf("cues[2].End = %v", cues[2].End)
	}
}

func TestParseVTTEmpty(t *testing.T) {
	if cues := ParseVTT(""); len(cues) != 0 {
		t.Errorf("got %d cues from empty content", len(cues))
	}
	if cues := ParseVTT("WEBVTT\n\n"); len(cues) != 0 {
		t.Errorf("got %d cues from header-only content", len(cues))
	}
}

func TestParseSRT(t *testing.T) {
	cues := ParseSRT(sampleSRT)

	if len(cues) != 2 {
		t.Fatalf("got %d cues, want 2", len(cues))
	}
	if cues[0].Start != time.Second {
		t.Errorf("cues[0].Start = %v", cues[0].Start)
	}
	if cues[0].Text != "First subtitle line continues here" {
		t.Errorf("cues[0].Text = %q", cues[0].Text)
	}
	if cues[1].Start != 4*time.Second+500*time.Millisecond {
		t.Errorf("cues[1].Start = %v", cues[1].Start)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	vttPath := filepath.Join(dir, "a.vtt")
	if err := os.WriteFile(vttPath, []byte(sampleVTT), 0644); err != nil {
		t.Fatal(err)
	}
	cues, err := ParseFile(vttPath)
	if err != nil {
		t.Fatalf("ParseFile(vtt) error = %v", err)
	}
	if len(cues) != 3 {
		t.Errorf("got %d cues, want 3", len(cues))
	}

	txtPath := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(txtPath, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFile(txtPath); err == nil {
		t.Error("ParseFile(txt) expected format error")
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.vtt")); err == nil {
		t.Error("ParseFile(missing) expected error")
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"00:00:02.350", 2*time.Second + 350*time.Millisecond, false},
		{"01:02:03.000", time.Hour + 2*time.Minute + 3*time.Second, false},
		{"02:05.500", 2*time.Minute + 5*time.Second + 500*time.Millisecond, false},
		{"00:00:04,000", 4 * time.Second, false},
		{"garbage", 0, true},
		{"1", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimestamp(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimestamp(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{75 * time.Second, "01:15"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{2*time.Hour + 3*time.Minute + 4*time.Second, "02:03:04"},
	}

	for _, tt := range tests {
		if got := FormatTimestamp(tt.in); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatVTTTimestamp(t *testing.T) {
	d := time.Hour + 2*time.Minute + 3*time.Second + 450*time.Millisecond
	if got := FormatVTTTimestamp(d); got != "01:02:03.450" {
		t.Errorf("FormatVTTTimestamp = %q", got)
	}
}

func TestDurationAndJoinText(t *testing.T) {
	cues := []Cue{
		{Start: time.Second, End: 3 * time.Second, Text: "one"},
		{Start: 3 * time.Second, End: 6 * time.Second, Text: "two"},
		{Start: 6 * time.Second, End: 10 * time.Second, Text: "three"},
	}

	if got := Duration(cues); got != 9*time.Second {
		t.Errorf("Duration = %v, want 9s", got)
	}
	if got := Duration(nil); got != 0 {
		t.Errorf("Duration(nil) = %v, want 0", got)
	}
	if got := JoinText(cues, 0, 1); got != "one two" {
		t.Errorf("JoinText = %q", got)
	}
	if got := JoinText(cues, 1, 5); got != "two three" {
		t.Errorf("JoinText clamps range, got %q", got)
	}
}

func TestVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
		ok   bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=abc123&t=42s", "abc123", true},
		{"https://example.com/video", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := VideoID(tt.url)
		if ok != tt.ok || got != tt.want {
			t.Errorf("VideoID(%q) = %q, %v; want %q, %v", tt.url, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsCaptionFile(t *testing.T) {
	if !IsCaptionFile("a.vtt") || !IsCaptionFile("b.SRT") {
		t.Error("expected .vtt and .srt to be caption files")
	}
	if IsCaptionFile("video.mp4") {
		t.Error("mp4 is not a caption file")
	}
}

func TestConvertRawTimed(t *testing.T) {
	raw := `0:00 welcome to the show
0:15 today we talk about Go
1:05 wrapping up`

	vtt, err := ConvertRaw(raw)
	if err != nil {
		t.Fatalf("ConvertRaw error = %v", err)
	}
	if !strings.HasPrefix(vtt, "WEBVTT") {
		t.Errorf("output missing WEBVTT header: %q", vtt[:20])
	}

	cues := ParseVTT(vtt)
	if len(cues) != 3 {
		t.Fatalf("got %d cues, want 3", len(cues))
	}
	if cues[0].Start != 0 || cues[0].End != 15*time.Second {
		t.Errorf("cues[0] = %v..%v, want 0..15s", cues[0].Start, cues[0].End)
	}
	if cues[1].Start != 15*time.Second {
		t.Errorf("cues[1].Start = %v", cues[1].Start)
	}
	if cues[2].Start != 65*time.Second {
		t.Errorf("cues[2].Start = %v", cues[2].Start)
	}
}

func TestConvertRawUntimed(t *testing.T) {
	raw := "This is the first sentence of the talk. Here comes another one with more words in it. Short."

	vtt, err := ConvertRaw(raw)
	if err != nil {
		t.Fatalf("ConvertRaw error = %v", err)
	}

	cues := ParseVTT(vtt)
	if len(cues) != 3 {
		t.Fatalf("got %d cues, want 3", len(cues))
	}
	for i, cue := range cues {
		if cue.End <= cue.Start {
			t.Errorf("cue %d has non-positive duration", i)
		}
		if i > 0 && cue.Start != cues[i-1].End {
			t.Errorf("cue %d does not start where the previous ended", i)
		}
	}
}

func TestConvertRawEmpty(t *testing.T) {
	if _, err := ConvertRaw("   \n  "); err == nil {
		t.Error("ConvertRaw expected error for empty input")
	}
}
