package question

// Classify determines a record's interaction type from its shape.
//
// Rules are checked in order and the first match wins:
//  1. a "decimal" answer format marks a short-answer question;
//  2. any stems or endings collection marks a matching question;
//  3. options whose first entry carries a "matches" marker also mark matching;
//  4. everything else is single choice.
//
// Classify never fails. Unrecognised shapes fall through to KindSingle.
func Classify(r Record) Kind {
	if r.AnswerFormat == "decimal" {
		return KindShort
	}
	if present(r.Statements) || present(r.Expressions) || present(r.Segments) || present(r.Endings) {
		return KindMatching
	}
	if elems, ok := arrayElems(r.Options); ok && len(elems) > 0 {
		if m, ok := objectMap(elems[0]); ok && present(m["matches"]) {
			return KindMatching
		}
	}
	return KindSingle
}
