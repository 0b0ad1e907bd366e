package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alexiusacademia/rcbd/internal/config"
	"github.com/alexiusacademia/rcbd/internal/flexure"
)

const testJob = `{
  "material_properties": {
    "concrete_grade": "C28",
    "main_steel_rebar_fy": 415,
    "shear_steel_fy": 275,
    "concrete_cover": 40
  },
  "design_settings": {
    "frame_type": "intermediate",
    "consider_torsion_design": true
  },
  "reinforcement_parameters": {
    "main_bar_range": [16, 25]
  },
  "floor_groups": {
    "2F": {
      "G1": {
        "B-OK": {
          "dimensions": {"base": 300, "height": 500, "length": 6000},
          "forces": {
            "left": {"max_moment_top": 183.5, "max_shear": 250, "max_torsion": 2},
            "mid": {"max_moment_bottom": 95, "max_shear": 120},
            "right": {
              "max_shear": 200,
              "unfactored_bottom": {"dead": 60, "live": 30}
            }
          }
        },
        "B-BAD": {
          "dimensions": {"base": 200, "height": 250, "length": 4000},
          "forces": {
            "mid": {"max_moment_bottom": 400, "max_shear": 80}
          }
        }
      }
    }
  }
}`

func loadTestJob(t *testing.T) *config.Job {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte(testJob), 0o644))
	job, err := config.Load(path)
	require.NoError(t, err)
	return job
}

func TestRun(t *testing.T) {
	doc, err := Run(loadTestJob(t), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "NSCP 2015", doc.Metadata.Code)
	assert.Equal(t, 2, doc.Metadata.BeamsProcessed)
	assert.Equal(t, config.FrameIntermediate, doc.Parameters.FrameType)
	assert.Equal(t, 28.0, doc.Parameters.Fc)

	beams := doc.Floors["2F"]["G1"]
	require.Contains(t, beams, "B-OK")
	require.Contains(t, beams, "B-BAD")
}

func TestRunHealthyBeam(t *testing.T) {
	doc, err := Run(loadTestJob(t), zap.NewNop())
	require.NoError(t, err)

	beam := doc.Floors["2F"]["G1"]["B-OK"]
	require.NotNil(t, beam)
	require.Len(t, beam.Sections, 3)

	left := beam.Sections["left"]
	top := left.Flexure["top"]
	require.NotNil(t, top)
	assert.NotEqual(t, flexure.StatusFail, top.Status)
	assert.Greater(t, top.AsProvided, top.AsRequired*0.99)

	// Intermediate frame: the ductility envelope is attached.
	require.NotNil(t, beam.Ductility)
	assert.Greater(t, beam.Ductility.MaxAsAllZones, 0.0)

	// Shear and torsion stages ran per section.
	require.NotNil(t, left.Shear)
	assert.Greater(t, left.Shear.Vc, 0.0)
	require.NotNil(t, left.Torsion)
	assert.True(t, left.Torsion.Skipped) // 2 kN·m is below threshold
}

func TestRunGoverningCombination(t *testing.T) {
	doc, err := Run(loadTestJob(t), zap.NewNop())
	require.NoError(t, err)

	// The right section carries unfactored moments: 1.2D + 1.6L governs.
	res := doc.Floors["2F"]["G1"]["B-OK"].Sections["right"].Flexure["bottom"]
	require.NotNil(t, res)
	assert.InDelta(t, 1.2*60+1.6*30, res.Mu, 1e-9)
	assert.NotEmpty(t, res.GoverningCombination)
}

func TestRunFailureIsolation(t *testing.T) {
	doc, err := Run(loadTestJob(t), zap.NewNop())
	require.NoError(t, err)

	// The undersized beam fails its section...
	bad := doc.Floors["2F"]["G1"]["B-BAD"].Sections["mid"].Flexure["bottom"]
	require.NotNil(t, bad)
	assert.Equal(t, flexure.StatusFail, bad.Status)

	// ...without touching its sibling's results.
	ok := doc.Floors["2F"]["G1"]["B-OK"].Sections["left"].Flexure["top"]
	assert.NotEqual(t, flexure.StatusFail, ok.Status)

	assert.GreaterOrEqual(t, doc.Metadata.FailureCount, 1)
	require.NotEmpty(t, doc.Metadata.Failures)
	assert.Contains(t, doc.Metadata.Failures[0], "B-BAD")
}

func TestRunNilLogger(t *testing.T) {
	// A nil logger falls back to a no-op one instead of panicking inside
	// the beam goroutines.
	doc, err := Run(loadTestJob(t), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Metadata.BeamsProcessed)
}

func TestGoverningFlexuralStateDeterministic(t *testing.T) {
	// Equal demands at both locations with different provided steel must
	// resolve the same way regardless of map iteration order.
	locations := map[string]*flexure.SectionResult{
		"top":    {Mu: 150, AsProvided: 1256.64, EffectiveDepth: 429.5},
		"bottom": {Mu: 150, AsProvided: 981.75, EffectiveDepth: 429.5},
	}

	mu, as, d := governingFlexuralState(locations)
	assert.Equal(t, 150.0, mu)
	assert.Equal(t, 429.5, d)
	// Fixed visit order (top, then bottom): the bottom slot wins the tie.
	assert.Equal(t, 981.75, as)

	for i := 0; i < 20; i++ {
		_, again, _ := governingFlexuralState(locations)
		assert.Equal(t, as, again)
	}
}

func TestRunInvalidJob(t *testing.T) {
	job := loadTestJob(t)
	job.FloorGroups = nil
	_, err := Run(job, zap.NewNop())
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	doc, err := Run(loadTestJob(t), zap.NewNop())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteJSON(doc, path, true))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "metadata")
	assert.Contains(t, decoded, "parameters")
	assert.Contains(t, decoded, "floors")
}
