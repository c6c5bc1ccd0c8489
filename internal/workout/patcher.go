// =============================================================================
// Workout Tree Tagger - Field Patcher
// =============================================================================
//
// This module rewrites the <name> and <description> fields of a workout
// document so a downstream training log can filter workouts by the folder
// they came from:
//
//   <name>        : the group tag is appended in brackets, e.g.
//                   "Sweet Spot 3x12" -> "Sweet Spot 3x12 [1-2]"
//   <description> : the origin label is prefixed with a colon and two
//                   spaces, e.g.
//                   "Three blocks." -> "File:Plans/Base/sst:  Three blocks."
//
// The asymmetry (append vs. prefix, bracket vs. colon) is deliberate and
// matches what downstream consumers already parse; do not unify the two.
// Missing elements are created. Everything else in the document passes
// through unchanged. The patch is a pure transform with no I/O.
//
// =============================================================================

package workout

// Patch parses docText, injects groupTag into <name> and originLabel into
// <description>, and returns the re-serialized document.
//
// PARAMETERS:
//   - docText: the raw workout file content.
//   - groupTag: the directory's hierarchical group identifier ("" for the root).
//   - originLabel: the human-readable origin string for the description.
//
// RETURNS:
//   - The updated document text.
//   - A parse error if docText is not well-formed XML; the caller logs it
//     and skips the file.
func Patch(docText, groupTag, originLabel string) (string, error) {
	root, err := Parse(docText)
	if err != nil {
		return "", err
	}

	name := root.FindOrInsert("name")
	name.Text += " [" + groupTag + "]"

	description := root.FindOrInsert("description")
	description.Text = originLabel + ":  " + description.Text

	return Serialize(root), nil
}
