package services

import (
	"fmt"
)

const resumeAnalysisSchema = `{
  "type": "object",
  "properties": {
    "strengths": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "description": { "type": "string" },
          "evidence": { "type": "array", "items": { "type": "string" } }
        },
        "required": ["description", "evidence"]
      }
    },
    "areas_for_improvement": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "description": { "type": "string" },
          "suggestions": { "type": "array", "items": { "type": "string" } }
        },
        "required": ["description", "suggestions"]
      }
    },
    "actionable_suggestions": {
      "type": "array",
      "items": { "type": "string" }
    }
  },
  "required": ["strengths", "areas_for_improvement", "actionable_suggestions"]
}`

const comparisonSchema = `{
  "similarity_score": <similarity between the resume and the job description as a decimal between 0 and 1>,
  "content": {
    "improvement_suggestions": ["specific suggestions to improve the resume for this job"],
    "strengths": ["strengths identified in the resume"],
    "areas_for_improvement": ["areas for improvement in the resume"]
  }
}`

type PromptBuilder struct {
	targetRole string
}

func NewPromptBuilder(targetRole string) *PromptBuilder {
	return &PromptBuilder{targetRole: targetRole}
}

// BuildResumeEnhancePrompt creates prompt for single resume analysis
func (pb *PromptBuilder) BuildResumeEnhancePrompt(resumeText string) string {
	return fmt.Sprintf(`Analyze the resume text provided below, focusing on three key areas:
1) Highlighting the candidate's strengths relevant to a %s role,
2) Identifying areas for improvement, particularly in project descriptions and skills alignment,
3) Providing specific, actionable suggestions for improving the resume.

Use this JSON schema for your response:
%s

Do not use markdown such as ** for emphasis or numbering. Return the information as JSON only.

RESUME TEXT:
%s`, pb.targetRole, resumeAnalysisSchema, resumeText)
}

// BuildComparePrompt creates prompt for resume vs job description comparison
func (pb *PromptBuilder) BuildComparePrompt(resumeText, jobDescriptionText string) string {
	return fmt.Sprintf(`Analyze the following Job Description (JD) and Resume, then provide a JSON-formatted response with the following structure:
%s

Job Description (JD): "%s"

Resume: "%s"`, comparisonSchema, jobDescriptionText, resumeText)
}
