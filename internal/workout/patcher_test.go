package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleWorkout = `<workout_file>
  <author>Robert</author>
  <name>Sweet Spot 3x12</name>
  <description>Three blocks just below threshold.</description>
  <sportType>bike</sportType>
  <workout>
    <Warmup Duration="600" PowerLow="0.45" PowerHigh="0.70"/>
    <SteadyState Duration="720" Power="0.90"/>
  </workout>
</workout_file>`

func TestPatchAppendsGroupTagToName(t *testing.T) {
	patched, err := Patch(sampleWorkout, "1-2", "File:Plans/Base/sst")
	require.NoError(t, err)

	root, err := Parse(patched)
	require.NoError(t, err)

	name := root.Find("name")
	require.NotNil(t, name)
	assert.Equal(t, "Sweet Spot 3x12 [1-2]", name.Text)
}

func TestPatchPrefixesOriginLabelToDescription(t *testing.T) {
	patched, err := Patch(sampleWorkout, "1-2", "File:Plans/Base/sst")
	require.NoError(t, err)

	root, err := Parse(patched)
	require.NoError(t, err)

	description := root.Find("description")
	require.NotNil(t, description)
	assert.Equal(t, "File:Plans/Base/sst:  Three blocks just below threshold.", description.Text)
}

func TestPatchCreatesMissingElements(t *testing.T) {
	doc := `<workout_file><sportType>bike</sportType></workout_file>`

	patched, err := Patch(doc, "3", "File:Plans/Base/ride")
	require.NoError(t, err)

	root, err := Parse(patched)
	require.NoError(t, err)

	name := root.Find("name")
	require.NotNil(t, name)
	assert.Equal(t, " [3]", name.Text)

	description := root.Find("description")
	require.NotNil(t, description)
	assert.Equal(t, "File:Plans/Base/ride:  ", description.Text)
}

func TestPatchEmptyRootTag(t *testing.T) {
	doc := `<workout_file><name>Ride</name></workout_file>`

	patched, err := Patch(doc, "", "File:workouts/root/a")
	require.NoError(t, err)

	root, err := Parse(patched)
	require.NoError(t, err)

	assert.Equal(t, "Ride []", root.Find("name").Text)
	assert.Equal(t, "File:workouts/root/a:  ", root.Find("description").Text)
}

func TestPatchPreservesSiblingElements(t *testing.T) {
	patched, err := Patch(sampleWorkout, "1", "File:a/b/c")
	require.NoError(t, err)

	root, err := Parse(patched)
	require.NoError(t, err)

	assert.Equal(t, "Robert", root.Find("author").Text)
	assert.Equal(t, "bike", root.Find("sportType").Text)

	workout := root.Find("workout")
	require.NotNil(t, workout)
	require.Len(t, workout.Children, 2)

	warmup := workout.Children[0]
	assert.Equal(t, "Warmup", warmup.XMLName.Local)
	require.Len(t, warmup.Attrs, 3)
	assert.Equal(t, "Duration", warmup.Attrs[0].Name.Local)
	assert.Equal(t, "600", warmup.Attrs[0].Value)

	steady := workout.Children[1]
	assert.Equal(t, "SteadyState", steady.XMLName.Local)
	assert.Equal(t, "0.90", steady.Attrs[1].Value)
}

func TestPatchMalformedXML(t *testing.T) {
	_, err := Patch(`<workout_file><name>broken`, "1", "File:a/b/c")
	assert.Error(t, err)
}

func TestPatchEscapesSpecialCharacters(t *testing.T) {
	doc := `<workout_file><name>Over &amp; Under</name></workout_file>`

	patched, err := Patch(doc, "2", "File:a/b/c")
	require.NoError(t, err)

	assert.Contains(t, patched, "Over &amp; Under [2]")

	root, err := Parse(patched)
	require.NoError(t, err)
	assert.Equal(t, "Over & Under [2]", root.Find("name").Text)
}

func TestPatchIsRepeatable(t *testing.T) {
	// Re-running the tool over its own output stacks tags rather than
	// corrupting the document.
	once, err := Patch(sampleWorkout, "1", "File:a/b/c")
	require.NoError(t, err)

	twice, err := Patch(once, "1", "File:a/b/c")
	require.NoError(t, err)

	root, err := Parse(twice)
	require.NoError(t, err)
	assert.Equal(t, "Sweet Spot 3x12 [1] [1]", root.Find("name").Text)
}
