package recommender

import (
	"encoding/json"
	"fmt"
)

const foundationalPrompt = `You are an educational counselor analyzing Class 10 student responses to help recommend the best stream for Class 11 and 12.

Student's quiz answers: %s

Respond with ONLY a JSON object in the following format:
{
    "recommendedStream": "Science/Commerce/Arts",
    "aiInsights": "Detailed explanation of why this stream is recommended, including strengths identified, career prospects and motivational guidance."
}

Consider the following streams:
- Science: mathematics, physics, chemistry, biology, engineering, medicine
- Commerce: business, economics, accounting, entrepreneurship
- Arts/Humanities: languages, social sciences, psychology, history, literature

Keep the insights encouraging and specific to the student's responses.`

const streamPrompt = `You are an educational counselor analyzing Class 12 student responses to recommend courses and career paths.

Student's current stream: %s
Student's quiz answers: %s

Respond with ONLY a JSON object in the following format:
{
    "recommendedStream": "Specific stream or specialization recommendation",
    "topCourses": ["Course 1", "Course 2", "Course 3", "Course 4", "Course 5"],
    "aiInsights": "Detailed explanation of course recommendations, career prospects, skills identified and next steps."
}

Consider popular courses like:
- Engineering (Computer Science, Mechanical, Electrical, Civil)
- Medical (MBBS, BDS, Nursing, Pharmacy)
- Commerce (B.Com, BBA, CA, CS)
- Arts (BA, Psychology, Journalism, Design)
- Law and Management

Provide specific, actionable insights with clear next steps.`

func encodeAnswers(answers []string) string {
	if answers == nil {
		answers = []string{}
	}
	b, err := json.Marshal(answers)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// FoundationalPrompt builds the class 10 stream-choice prompt.
func FoundationalPrompt(answers []string) string {
	return fmt.Sprintf(foundationalPrompt, encodeAnswers(answers))
}

// StreamPrompt builds the class 12 course-choice prompt.
func StreamPrompt(answers []string, currentStream string) string {
	return fmt.Sprintf(streamPrompt, currentStream, encodeAnswers(answers))
}
