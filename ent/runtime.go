// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/nmt/ent/attempt"
	"github.com/abhisek/nmt/ent/class"
	"github.com/abhisek/nmt/ent/llmrequestevent"
	"github.com/abhisek/nmt/ent/questionsubmission"
	"github.com/abhisek/nmt/ent/schema"
	"github.com/abhisek/nmt/ent/sessionevent"
	"github.com/abhisek/nmt/ent/snapshot"
	"github.com/abhisek/nmt/ent/student"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescSessionID is the schema descriptor for session_id field.
	attemptDescSessionID := attemptFields[0].Descriptor()
	// attempt.DefaultSessionID holds the default value on creation for the session_id field.
	attempt.DefaultSessionID = attemptDescSessionID.Default.(string)
	// attemptDescStudentEmail is the schema descriptor for student_email field.
	attemptDescStudentEmail := attemptFields[1].Descriptor()
	// attempt.StudentEmailValidator is a validator for the "student_email" field. It is called by the builders before save.
	attempt.StudentEmailValidator = attemptDescStudentEmail.Validators[0].(func(string) error)
	// attemptDescStudentName is the schema descriptor for student_name field.
	attemptDescStudentName := attemptFields[2].Descriptor()
	// attempt.DefaultStudentName holds the default value on creation for the student_name field.
	attempt.DefaultStudentName = attemptDescStudentName.Default.(string)
	// attemptDescScore is the schema descriptor for score field.
	attemptDescScore := attemptFields[3].Descriptor()
	// attempt.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	attempt.ScoreValidator = attemptDescScore.Validators[0].(func(int) error)
	// attemptDescPercent is the schema descriptor for percent field.
	attemptDescPercent := attemptFields[4].Descriptor()
	// attempt.PercentValidator is a validator for the "percent" field. It is called by the builders before save.
	attempt.PercentValidator = attemptDescPercent.Validators[0].(func(int) error)
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptFields[7].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	classFields := schema.Class{}.Fields()
	_ = classFields
	// classDescName is the schema descriptor for name field.
	classDescName := classFields[0].Descriptor()
	// class.NameValidator is a validator for the "name" field. It is called by the builders before save.
	class.NameValidator = classDescName.Validators[0].(func(string) error)
	// classDescCreatedAt is the schema descriptor for created_at field.
	classDescCreatedAt := classFields[3].Descriptor()
	// class.DefaultCreatedAt holds the default value on creation for the created_at field.
	class.DefaultCreatedAt = classDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequestevent.InputTokensValidator is a validator for the "input_tokens" field. It is called by the builders before save.
	llmrequestevent.InputTokensValidator = llmrequesteventDescInputTokens.Validators[0].(func(int) error)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequestevent.OutputTokensValidator is a validator for the "output_tokens" field. It is called by the builders before save.
	llmrequestevent.OutputTokensValidator = llmrequesteventDescOutputTokens.Validators[0].(func(int) error)
	// llmrequesteventDescCost is the schema descriptor for cost field.
	llmrequesteventDescCost := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultCost holds the default value on creation for the cost field.
	llmrequestevent.DefaultCost = llmrequesteventDescCost.Default.(float64)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorKind is the schema descriptor for error_kind field.
	llmrequesteventDescErrorKind := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorKind holds the default value on creation for the error_kind field.
	llmrequestevent.DefaultErrorKind = llmrequesteventDescErrorKind.Default.(string)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	questionsubmissionFields := schema.QuestionSubmission{}.Fields()
	_ = questionsubmissionFields
	// questionsubmissionDescTopic is the schema descriptor for topic field.
	questionsubmissionDescTopic := questionsubmissionFields[1].Descriptor()
	// questionsubmission.DefaultTopic holds the default value on creation for the topic field.
	questionsubmission.DefaultTopic = questionsubmissionDescTopic.Default.(string)
	// questionsubmissionDescKind is the schema descriptor for kind field.
	questionsubmissionDescKind := questionsubmissionFields[2].Descriptor()
	// questionsubmission.DefaultKind holds the default value on creation for the kind field.
	questionsubmission.DefaultKind = questionsubmissionDescKind.Default.(string)
	// questionsubmissionDescSource is the schema descriptor for source field.
	questionsubmissionDescSource := questionsubmissionFields[4].Descriptor()
	// questionsubmission.DefaultSource holds the default value on creation for the source field.
	questionsubmission.DefaultSource = questionsubmissionDescSource.Default.(string)
	// questionsubmissionDescAuthor is the schema descriptor for author field.
	questionsubmissionDescAuthor := questionsubmissionFields[5].Descriptor()
	// questionsubmission.DefaultAuthor holds the default value on creation for the author field.
	questionsubmission.DefaultAuthor = questionsubmissionDescAuthor.Default.(string)
	// questionsubmissionDescReviewNote is the schema descriptor for review_note field.
	questionsubmissionDescReviewNote := questionsubmissionFields[6].Descriptor()
	// questionsubmission.DefaultReviewNote holds the default value on creation for the review_note field.
	questionsubmission.DefaultReviewNote = questionsubmissionDescReviewNote.Default.(string)
	// questionsubmissionDescCreatedAt is the schema descriptor for created_at field.
	questionsubmissionDescCreatedAt := questionsubmissionFields[7].Descriptor()
	// questionsubmission.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionsubmission.DefaultCreatedAt = questionsubmissionDescCreatedAt.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescStudentEmail is the schema descriptor for student_email field.
	sessioneventDescStudentEmail := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultStudentEmail holds the default value on creation for the student_email field.
	sessionevent.DefaultStudentEmail = sessioneventDescStudentEmail.Default.(string)
	// sessioneventDescReason is the schema descriptor for reason field.
	sessioneventDescReason := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultReason holds the default value on creation for the reason field.
	sessionevent.DefaultReason = sessioneventDescReason.Default.(string)
	// sessioneventDescQuestions is the schema descriptor for questions field.
	sessioneventDescQuestions := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestions holds the default value on creation for the questions field.
	sessionevent.DefaultQuestions = sessioneventDescQuestions.Default.(int)
	// sessioneventDescAnswered is the schema descriptor for answered field.
	sessioneventDescAnswered := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultAnswered holds the default value on creation for the answered field.
	sessionevent.DefaultAnswered = sessioneventDescAnswered.Default.(int)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescSlot is the schema descriptor for slot field.
	snapshotDescSlot := snapshotFields[0].Descriptor()
	// snapshot.SlotValidator is a validator for the "slot" field. It is called by the builders before save.
	snapshot.SlotValidator = snapshotDescSlot.Validators[0].(func(string) error)
	// snapshotDescVersion is the schema descriptor for version field.
	snapshotDescVersion := snapshotFields[1].Descriptor()
	// snapshot.DefaultVersion holds the default value on creation for the version field.
	snapshot.DefaultVersion = snapshotDescVersion.Default.(int)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	// snapshot.UpdateDefaultTimestamp holds the default value on update for the timestamp field.
	snapshot.UpdateDefaultTimestamp = snapshotDescTimestamp.UpdateDefault.(func() time.Time)
	studentFields := schema.Student{}.Fields()
	_ = studentFields
	// studentDescEmail is the schema descriptor for email field.
	studentDescEmail := studentFields[0].Descriptor()
	// student.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	student.EmailValidator = studentDescEmail.Validators[0].(func(string) error)
	// studentDescName is the schema descriptor for name field.
	studentDescName := studentFields[1].Descriptor()
	// student.DefaultName holds the default value on creation for the name field.
	student.DefaultName = studentDescName.Default.(string)
	// studentDescCreatedAt is the schema descriptor for created_at field.
	studentDescCreatedAt := studentFields[2].Descriptor()
	// student.DefaultCreatedAt holds the default value on creation for the created_at field.
	student.DefaultCreatedAt = studentDescCreatedAt.Default.(func() time.Time)
}
