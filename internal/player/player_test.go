package player

import (
	"reflect"
	"testing"
)

func TestNewFallsBackToDefaultCommand(t *testing.T) {
	l := New("")
	if l.Command() != DefaultCommand {
		t.Fatalf("expected default command %q, got %q", DefaultCommand, l.Command())
	}
	l = New("  vlc  ")
	if l.Command() != "vlc" {
		t.Fatalf("expected trimmed command vlc, got %q", l.Command())
	}
}

func TestArgvOrdersExtraArgsBeforeMedia(t *testing.T) {
	l := New("mpv", "--fullscreen")
	argv := l.Argv("/discs/BDMV/STREAM/00000.m2ts", 0)
	want := []string{"mpv", "--fullscreen", "/discs/BDMV/STREAM/00000.m2ts"}
	if !reflect.DeepEqual(argv, want) {
		t.Fatalf("expected argv %v, got %v", want, argv)
	}
}

func TestArgvIncludesChapterFlag(t *testing.T) {
	argv := New("mpv").Argv("/discs/BDMV/STREAM/00000.m2ts", 3)
	want := []string{"mpv", "--chapter=3", "/discs/BDMV/STREAM/00000.m2ts"}
	if !reflect.DeepEqual(argv, want) {
		t.Fatalf("expected argv %v, got %v", want, argv)
	}
}

func TestLaunchRejectsEmptyMedia(t *testing.T) {
	if err := New("mpv").Launch("  ", 0); err == nil {
		t.Fatalf("expected error for empty media path")
	}
}
