package command

import (
	"encoding/json"
	"reflect"
)

// toData serializes v (a model record) to the generic map[string]any shape
// Command.Data carries, by round-tripping it through JSON rather than
// hand-listing fields — the same trick the teacher's parser uses to turn a
// typed AST node into its generic token form, kept here because every
// record already has the json tags that define "the serialized form" the
// spec's diffing rules (§4.8) are stated in terms of.
func toData(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// fromData decodes a Command.Data map into a concrete record type T.
func fromData[T any](data map[string]any) (T, error) {
	var out T
	raw, err := json.Marshal(data)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

// newRecordData decodes an UPDATE_*'s Data into T, patches in the id the
// Command carries separately, and re-serializes it. Diffing against this
// canonical re-encoding — rather than the caller's raw Data map — keeps
// the comparison in invert.go immune to incidental JSON-shape differences
// (a literal Go int vs. a round-tripped float64) and to whether the
// caller bothered to repeat the id inside Data at all.
func newRecordData[T any](data map[string]any, id *int64, setID func(*T, *int64)) (map[string]any, error) {
	rec, err := fromData[T](data)
	if err != nil {
		return nil, err
	}
	setID(&rec, id)
	return toData(rec)
}

// diffData returns the subset of keys (from prior's values) where prior and
// next disagree, over the union of both maps' keys, or nil if they agree on
// every key (spec §4.8: "the inverse carries only those data keys whose
// prior value differed from the new value, key-by-key on the serialized
// form"). A key present in only one map counts as differing.
func diffData(prior, next map[string]any) map[string]any {
	out := make(map[string]any)
	for k := range prior {
		if !reflect.DeepEqual(prior[k], next[k]) {
			out[k] = prior[k]
		}
	}
	for k := range next {
		if _, seen := out[k]; seen {
			continue
		}
		if _, inPrior := prior[k]; inPrior {
			continue
		}
		out[k] = prior[k] // nil: the key didn't exist before this update
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
