package bluray

import (
	"testing"

	"github.com/atomicstack/bluray-menu-control/internal/testutil"
)

func TestHasBDJSupportRequiresBothFileKinds(t *testing.T) {
	cases := []struct {
		name string
		spec testutil.DiscSpec
		want bool
	}{
		{
			name: "jar and bdjo",
			spec: testutil.DiscSpec{
				JARs:  map[string]int{"00000.jar": 64},
				BDJOs: map[string]int{"00000.bdjo": 64},
			},
			want: true,
		},
		{
			name: "jar only",
			spec: testutil.DiscSpec{JARs: map[string]int{"00000.jar": 64}},
			want: false,
		},
		{
			name: "bdjo only",
			spec: testutil.DiscSpec{BDJOs: map[string]int{"00000.bdjo": 64}},
			want: false,
		},
		{
			name: "empty directories",
			spec: testutil.DiscSpec{},
			want: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := testutil.BuildDisc(t, tc.spec)
			if got := NewParser(root).HasBDJSupport(); got != tc.want {
				t.Fatalf("expected HasBDJSupport %v, got %v", tc.want, got)
			}
		})
	}
}

func TestApplicationsOnePerBDJO(t *testing.T) {
	root := testutil.BuildDisc(t, testutil.DiscSpec{
		JARs: map[string]int{"00000.jar": 64},
		BDJOs: map[string]int{
			"00000.bdjo": 64,
			"12345.bdjo": 64,
		},
	})
	apps, err := NewParser(root).Applications()
	if err != nil {
		t.Fatalf("applications: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(apps))
	}
	if apps[0].Name != "00000" || apps[1].Name != "12345" {
		t.Fatalf("expected name-ordered applications, got %+v", apps)
	}
	for _, app := range apps {
		if len(app.Entries) != 6 {
			t.Fatalf("expected fixed six-item menu, got %d", len(app.Entries))
		}
		if app.Entries[0].Action != ActionBDJPlayMain {
			t.Fatalf("expected leading bdj_play_main, got %s", app.Entries[0].Action)
		}
		if app.Entries[5].Action != ActionFallbackMenu {
			t.Fatalf("expected trailing fallback_menu, got %s", app.Entries[5].Action)
		}
	}
}

func TestApplicationsWithoutSupport(t *testing.T) {
	root := testutil.BuildDisc(t, testutil.DiscSpec{
		BDJOs: map[string]int{"00000.bdjo": 64},
	})
	apps, err := NewParser(root).Applications()
	if err != nil {
		t.Fatalf("applications: %v", err)
	}
	if len(apps) != 0 {
		t.Fatalf("expected no applications without JAR files, got %d", len(apps))
	}
}
