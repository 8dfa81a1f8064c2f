// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/keiaapp/keia/ent/assessmentevent"
	"github.com/keiaapp/keia/ent/llmrequestevent"
	"github.com/keiaapp/keia/ent/profile"
	"github.com/keiaapp/keia/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescSessionID is the schema descriptor for session_id field.
	assessmenteventDescSessionID := assessmenteventFields[0].Descriptor()
	// assessmentevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentevent.SessionIDValidator = assessmenteventDescSessionID.Validators[0].(func(string) error)
	// assessmenteventDescUserID is the schema descriptor for user_id field.
	assessmenteventDescUserID := assessmenteventFields[1].Descriptor()
	// assessmentevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	assessmentevent.UserIDValidator = assessmenteventDescUserID.Validators[0].(func(string) error)
	// assessmenteventDescAssessment is the schema descriptor for assessment field.
	assessmenteventDescAssessment := assessmenteventFields[2].Descriptor()
	// assessmentevent.AssessmentValidator is a validator for the "assessment" field. It is called by the builders before save.
	assessmentevent.AssessmentValidator = assessmenteventDescAssessment.Validators[0].(func(string) error)
	// assessmenteventDescPhase is the schema descriptor for phase field.
	assessmenteventDescPhase := assessmenteventFields[4].Descriptor()
	// assessmentevent.DefaultPhase holds the default value on creation for the phase field.
	assessmentevent.DefaultPhase = assessmenteventDescPhase.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUserID is the schema descriptor for user_id field.
	profileDescUserID := profileFields[0].Descriptor()
	// profile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	profile.UserIDValidator = profileDescUserID.Validators[0].(func(string) error)
	// profileDescEmail is the schema descriptor for email field.
	profileDescEmail := profileFields[1].Descriptor()
	// profile.DefaultEmail holds the default value on creation for the email field.
	profile.DefaultEmail = profileDescEmail.Default.(string)
	// profileDescUsername is the schema descriptor for username field.
	profileDescUsername := profileFields[2].Descriptor()
	// profile.DefaultUsername holds the default value on creation for the username field.
	profile.DefaultUsername = profileDescUsername.Default.(string)
	// profileDescLevel is the schema descriptor for level field.
	profileDescLevel := profileFields[3].Descriptor()
	// profile.DefaultLevel holds the default value on creation for the level field.
	profile.DefaultLevel = profileDescLevel.Default.(string)
	// profileDescXp is the schema descriptor for xp field.
	profileDescXp := profileFields[4].Descriptor()
	// profile.DefaultXp holds the default value on creation for the xp field.
	profile.DefaultXp = profileDescXp.Default.(int)
	// profile.XpValidator is a validator for the "xp" field. It is called by the builders before save.
	profile.XpValidator = profileDescXp.Validators[0].(func(int) error)
	// profileDescStreak is the schema descriptor for streak field.
	profileDescStreak := profileFields[5].Descriptor()
	// profile.DefaultStreak holds the default value on creation for the streak field.
	profile.DefaultStreak = profileDescStreak.Default.(int)
	// profile.StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	profile.StreakValidator = profileDescStreak.Validators[0].(func(int) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[8].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
}
