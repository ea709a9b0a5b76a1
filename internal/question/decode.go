package question

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Decode classifies a record and decodes it into its typed variant.
func Decode(r Record) Question {
	return DecodeAs(r, Classify(r))
}

// DecodeAs decodes a record as the given kind. Restored sessions use it so
// a slot keeps the kind it was assembled with.
//
// Missing or malformed fields degrade to empty collections rather than
// errors: a single-choice question with unreadable options simply has none.
func DecodeAs(r Record, kind Kind) Question {
	if !kind.Valid() {
		kind = Classify(r)
	}
	q := Question{
		ID:     r.ID,
		Topic:  r.Topic,
		Kind:   kind,
		Text:   r.Question,
		Latex:  r.Latex,
		Image:  r.Image,
		Record: r,
	}
	switch kind {
	case KindShort:
		q.Short = &Short{Answer: scalarText(r.Answer)}
	case KindMatching:
		q.Matching = &Matching{
			Left:  leftItems(r),
			Right: rightItems(r),
			Pairs: answerPairs(r.Answer),
		}
	default:
		q.Single = &Single{
			Options: options(r.Options),
			Answer:  answerKeys(r.Answer),
		}
	}
	return q
}

// options decodes an array of {label, text, latex} objects.
func options(raw json.RawMessage) []Option {
	elems, ok := arrayElems(raw)
	if !ok {
		return nil
	}
	out := make([]Option, 0, len(elems))
	for _, e := range elems {
		if o, ok := option(e); ok {
			out = append(out, o)
		}
	}
	return out
}

func option(raw json.RawMessage) (Option, bool) {
	m, ok := objectMap(raw)
	if !ok {
		return Option{}, false
	}
	return Option{
		Label: scalarText(m["label"]),
		Text:  scalarText(m["text"]),
		Latex: scalarText(m["latex"]),
	}, true
}

// answerKeys decodes a single-choice answer key. The canonical form is a
// list of option objects; a bare label string is accepted as a one-entry key.
func answerKeys(raw json.RawMessage) []Option {
	switch jsonKind(raw) {
	case '[':
		return options(raw)
	case '"':
		if l := scalarText(raw); l != "" {
			return []Option{{Label: l}}
		}
	case '{':
		if o, ok := option(raw); ok {
			return []Option{o}
		}
	}
	return nil
}

// leftItems collects matching stems from the first stem collection present.
func leftItems(r Record) []Item {
	for _, raw := range []json.RawMessage{r.Statements, r.Expressions, r.Segments} {
		if present(raw) {
			return sortItems(stemItems(raw))
		}
	}
	if elems, ok := arrayElems(r.Options); ok && len(elems) > 0 {
		if m, ok := objectMap(elems[0]); ok && present(m["matches"]) {
			items := make([]Item, 0, len(elems))
			for _, e := range elems {
				om, ok := objectMap(e)
				if !ok {
					continue
				}
				items = append(items, Item{Key: scalarText(om["label"]), Text: itemText(e)})
			}
			return sortItems(items)
		}
	}
	return nil
}

// stemItems accepts an array of {label, text|latex} objects, a plain array
// (keyed by position) or an object keyed by stem.
func stemItems(raw json.RawMessage) []Item {
	if elems, ok := arrayElems(raw); ok {
		labelled := len(elems) > 0 && hasTextOrLatex(elems[0])
		items := make([]Item, 0, len(elems))
		for i, e := range elems {
			if labelled {
				m, _ := objectMap(e)
				items = append(items, Item{Key: scalarText(m["label"]), Text: itemText(e)})
				continue
			}
			items = append(items, Item{Key: strconv.Itoa(i), Text: itemText(e)})
		}
		return items
	}
	fields, err := objectFields(raw)
	if err != nil {
		return nil
	}
	items := make([]Item, 0, len(fields))
	for _, f := range fields {
		items = append(items, Item{Key: f.Key, Text: itemText(f.Value)})
	}
	return items
}

// rightItems collects matching endings from endings or options.
func rightItems(r Record) []Item {
	if present(r.Endings) {
		return sortItems(keyedItems(r.Endings))
	}
	if jsonKind(r.Options) == '{' {
		return sortItems(keyedItems(r.Options))
	}
	if elems, ok := arrayElems(r.Options); ok {
		items := make([]Item, 0, len(elems))
		for _, e := range elems {
			m, ok := objectMap(e)
			if !ok {
				continue
			}
			text := scalarText(m["text"])
			if text == "" {
				text = scalarText(m["latex"])
			}
			items = append(items, Item{Key: scalarText(m["label"]), Text: text})
		}
		return sortItems(items)
	}
	return nil
}

// keyedItems reads an object keyed by letter, or an array of labelled objects.
func keyedItems(raw json.RawMessage) []Item {
	if elems, ok := arrayElems(raw); ok {
		items := make([]Item, 0, len(elems))
		for i, e := range elems {
			if m, ok := objectMap(e); ok && present(m["label"]) {
				items = append(items, Item{Key: scalarText(m["label"]), Text: itemText(e)})
				continue
			}
			items = append(items, Item{Key: strconv.Itoa(i), Text: itemText(e)})
		}
		return items
	}
	fields, err := objectFields(raw)
	if err != nil {
		return nil
	}
	items := make([]Item, 0, len(fields))
	for _, f := range fields {
		items = append(items, Item{Key: f.Key, Text: itemText(f.Value)})
	}
	return items
}

// answerPairs decodes a matching answer key. Arrays hold objects whose stem
// is named statement, expression, segment or label; objects map stem to
// ending directly. Entries without a stem key are dropped.
func answerPairs(raw json.RawMessage) []Pair {
	if elems, ok := arrayElems(raw); ok {
		pairs := make([]Pair, 0, len(elems))
		for _, e := range elems {
			m, ok := objectMap(e)
			if !ok {
				continue
			}
			var key string
			for _, name := range []string{"statement", "expression", "segment", "label"} {
				if present(m[name]) {
					key = scalarText(m[name])
					break
				}
			}
			if key == "" {
				continue
			}
			pairs = append(pairs, Pair{Key: key, Label: scalarText(m["label"])})
		}
		return pairs
	}
	fields, err := objectFields(raw)
	if err != nil {
		return nil
	}
	pairs := make([]Pair, 0, len(fields))
	for _, f := range fields {
		pairs = append(pairs, Pair{Key: f.Key, Label: scalarText(f.Value)})
	}
	return pairs
}

func sortItems(items []Item) []Item {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items
}
