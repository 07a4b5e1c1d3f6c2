package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name        string
		yamlConfig  string
		expectError bool
		errorMsg    string
		want        Settings
	}{
		{
			name: "Full",
			yamlConfig: `
rotors: [II, IV, V]
reflector: C
rings: BUL
position: BLA
plugs: "AV BS CG DL FU HZ IN KM OW RX"
`,
			want: Settings{
				Rotors:    []string{"II", "IV", "V"},
				Reflector: "C",
				Rings:     "BUL",
				Position:  "BLA",
				Plugs:     "AV BS CG DL FU HZ IN KM OW RX",
			},
		},
		{
			name:       "DefaultsForOmittedFields",
			yamlConfig: "position: ADU\n",
			want: Settings{
				Rotors:    []string{"I", "II", "III"},
				Reflector: "B",
				Rings:     "AAA",
				Position:  "ADU",
			},
		},
		{
			name:        "TooManyRotors",
			yamlConfig:  "rotors: [I, II, III, IV]\n",
			expectError: true,
			errorMsg:    "rotors must have exactly 3 entries",
		},
		{
			name:        "Malformed",
			yamlConfig:  "rotors: [I, II\n",
			expectError: true,
			errorMsg:    "failed to parse settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "machine.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yamlConfig), 0o600))

			got, err := LoadSettings(path)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
