package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"moonshine/pkg/api"
)

func sampleReport() Report {
	s := &Section{Title: "drift", Columns: []string{"days", "mix"}}
	s.Add(api.DriftV1{Kind: "drift", Days: 30, MixFraction: 0.48}, "30", "0.48")
	s.Add(api.DriftV1{Kind: "drift", Days: 90, MixFraction: 0.31}, "90", "0.31")
	empty := &Section{Title: "nothing", Columns: []string{"x"}}
	return Report{
		RunID:    "run-1",
		Tool:     "moonshine-thermo",
		Sections: []*Section{s, empty},
		Data:     api.ThermoReportV1{Drift: []api.DriftV1{{Kind: "drift", Days: 30}}},
	}
}

func TestWriteText(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("text", &b, sampleReport(), true))
	want := "# drift\ndays\tmix\n30\t0.48\n90\t0.31\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Fatalf("text output mismatch (-want +got):\n%s", diff)
	}

	b.Reset()
	require.NoError(t, Write("text", &b, sampleReport(), false))
	assert.NotContains(t, b.String(), "days\tmix")
}

func TestWriteText_SeparatesSections(t *testing.T) {
	a := &Section{Title: "a"}
	a.Add(nil, "1")
	c := &Section{Title: "c"}
	c.Add(nil, "2")
	var b bytes.Buffer
	require.NoError(t, WriteText(&b, Report{Sections: []*Section{a, c}}, false))
	assert.Equal(t, "# a\n1\n\n# c\n2\n", b.String())
}

func TestWriteJSON_Envelope(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("json", &b, sampleReport(), true))

	var got struct {
		RunID string             `json:"run_id"`
		Tool  string             `json:"tool"`
		Data  api.ThermoReportV1 `json:"data"`
	}
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, "moonshine-thermo", got.Tool)
	require.Len(t, got.Data.Drift, 1)
	assert.Equal(t, 30, got.Data.Drift[0].Days)
}

func TestWriteJSONL_OneLinePerRecord(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("jsonl", &b, sampleReport(), true))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 2)
	var d api.DriftV1
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &d))
	assert.Equal(t, api.DriftV1{Kind: "drift", Days: 90, MixFraction: 0.31}, d)
}

func TestWriteYAML(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("yaml", &b, sampleReport(), true))
	var got map[string]any
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, "run-1", got["run_id"])
	assert.Contains(t, b.String(), "days: 30")
}

func TestF(t *testing.T) {
	assert.Equal(t, "80.50", F(80.5, 2))
	assert.Equal(t, "10000", F(9999.7, 0))
}
