package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfileDocument_Valid(t *testing.T) {
	doc := `{
		"userSkills": [
			{"skillId": "python", "name": "Python", "level": 2, "category": "technical"},
			{"skillId": "git", "name": "Git", "level": 3, "category": "tools"}
		],
		"userDomains": [
			{
				"id": "sde",
				"name": "Software Development",
				"skills": [{"id": "apis", "name": "REST APIs", "level": 1}]
			}
		],
		"dsaProgress": {"completed": ["arrays"], "inProgress": [], "notStarted": []},
		"selectedCompany": "Acme",
		"selectedRole": "backend"
	}`

	assert.NoError(t, ValidateProfileDocument(doc))
}

func TestValidateProfileDocument_LevelOutOfRange(t *testing.T) {
	doc := `{
		"userSkills": [
			{"skillId": "python", "name": "Python", "level": 7}
		]
	}`

	err := ValidateProfileDocument(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateProfileDocument_MissingSkillID(t *testing.T) {
	doc := `{
		"userSkills": [
			{"name": "Python", "level": 2}
		]
	}`

	assert.Error(t, ValidateProfileDocument(doc))
}

func TestValidateAnalysisPayload_Enveloped(t *testing.T) {
	payload := `{
		"data": {
			"company_profile": {"industry": "Fintech"},
			"required_skills": {
				"core_skills": [{"name": "Python", "level": 3}]
			}
		}
	}`

	assert.NoError(t, ValidateAnalysisPayload(payload))
}

func TestValidateAnalysisPayload_Bare(t *testing.T) {
	payload := `{
		"company_profile": {"industry": "Fintech"},
		"required_skills": {
			"core_skills": [{"name": "Python", "level": "3"}]
		}
	}`

	assert.NoError(t, ValidateAnalysisPayload(payload))
}

func TestValidateAnalysisPayload_WrongShape(t *testing.T) {
	payload := `{
		"data": {
			"required_skills": {"core_skills": [{"name": 42}]}
		}
	}`

	assert.Error(t, ValidateAnalysisPayload(payload))
}

func TestValidateJSONString_InvalidSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": "nope"}`, `{}`)
	require.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}
