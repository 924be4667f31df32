package cmd

import (
	"testing"
)

func TestSetting(t *testing.T) {
	t.Setenv("HC_TEST_SET", "from-env")
	t.Setenv("HC_TEST_EMPTY", "")

	testCases := []struct {
		name string
		flag string
		key  string
		want string
	}{
		{"flag wins", "from-flag", "HC_TEST_SET", "from-flag"},
		{"env", "", "HC_TEST_SET", "from-env"},
		{"empty env is set", "", "HC_TEST_EMPTY", ""},
		{"default", "", "HC_TEST_UNSET", "default"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := setting(tc.flag, tc.key, "default"); got != tc.want {
				t.Errorf("setting(%q, %q) = %q, want %q", tc.flag, tc.key, got, tc.want)
			}
		})
	}
}

func TestPrivateSetting(t *testing.T) {
	testCases := []struct {
		name string
		set  bool
		flag bool
		env  string
		want bool
	}{
		{"nothing", false, false, "", false},
		{"env true", false, false, "true", true},
		{"env 1", false, false, "1", true},
		{"env false", false, false, "false", false},
		{"env invalid", false, false, "maybe", false},
		{"flag true", true, true, "", true},
		{"flag false wins over env", true, false, "true", false},
		{"flag true wins over env", true, true, "false", true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HC_PRIVATE", tc.env)
			if got := privateSetting(tc.set, tc.flag); got != tc.want {
				t.Errorf("privateSetting(%v, %v) with HC_PRIVATE=%q = %v, want %v", tc.set, tc.flag, tc.env, got, tc.want)
			}
		})
	}
}

func TestIsPrivate_Unset(t *testing.T) {
	t.Setenv("HC_PRIVATE", "true")
	if !isPrivate() {
		t.Errorf("isPrivate() without -private and HC_PRIVATE=true = false, want true")
	}
}

func TestSnapshotPaths(t *testing.T) {
	t.Setenv("HC_POSITIONS_PATH", "$.data.positions")
	t.Setenv("HC_ACCOUNTS_PATH", "")

	paths := snapshotPaths()
	if got, want := paths.Positions, "$.data.positions"; got != want {
		t.Errorf("snapshotPaths().Positions = %q, want %q", got, want)
	}
	if got := paths.Accounts; got != "" {
		t.Errorf("snapshotPaths().Accounts = %q, want empty", got)
	}
}

func TestDecodeSnapshot(t *testing.T) {
	t.Setenv("HC_SNAPSHOT", "../testdata/snapshot.json")
	s, err := DecodeSnapshot()
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	if got, want := len(s.Positions), 3; got != want {
		t.Errorf("DecodeSnapshot() has %d positions, want %d", got, want)
	}

	t.Setenv("HC_SNAPSHOT", "testdata/missing.json")
	s, err = DecodeSnapshot()
	if err != nil {
		t.Fatalf("DecodeSnapshot() of a missing file error = %v", err)
	}
	if len(s.Positions) != 0 {
		t.Errorf("DecodeSnapshot() of a missing file has %d positions, want 0", len(s.Positions))
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, cmd := range Commands {
		if _, ok := c.Sub[cmd.Name()]; !ok {
			t.Errorf("subcommand %q has no completion", cmd.Name())
		}
	}
	if len(c.Sub) != len(Commands) {
		t.Errorf("Completion() has %d subcommands, want %d", len(c.Sub), len(Commands))
	}
}
