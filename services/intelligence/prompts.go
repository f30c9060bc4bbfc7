package intelligence

import (
	"fmt"
	"strings"

	"saathi/models"
	"saathi/utils"
)

func buildSkillPrompt() string {
	return fmt.Sprintf(
		"Listen to this audio carefully. The person is describing what kind of work they do. "+
			"Identify their skills and match them ONLY from this list: [%s]. "+
			"Return ONLY the matched skill names in UPPERCASE separated by commas. "+
			"Do not add any explanation. If nothing matches return NONE. "+
			"Example output: PLUMBER,ELECTRICIAN",
		strings.Join(utils.ValidSkills, ", "),
	)
}

func buildRegistrationPrompt() string {
	return fmt.Sprintf(`Listen to this audio carefully. A blue-collar worker is registering on a service platform.
They may speak in Hindi, English, Telugu, Marathi, or Gujarati - or a mix.

Extract the following details from what they say:
- name: their full name
- phone: their 10-digit mobile number (digits only, no spaces)
- email: their email address (if mentioned, else leave empty)
- password: if they mention one, else leave empty
- language: detect which language they spoke most - return one of: HINDI, ENGLISH, TELUGU, MARATHI, GUJARATI
- city: which city or town they are in
- skills: what kind of work they do - match ONLY from this list: %s
- pricePerHour: how much they charge per job in rupees (number only) - if not mentioned use 300
- role: always return "WORKER"

Return ONLY a valid JSON object with exactly these fields, no explanation, no markdown:
{
  "name": "",
  "phone": "",
  "email": "",
  "password": "",
  "language": "",
  "city": "",
  "skills": "",
  "pricePerHour": 300,
  "role": "WORKER",
  "latitude": 18.5204,
  "longitude": 73.8567
}`, strings.Join(utils.ValidSkills, ", "))
}

func buildPredictionPrompt(stats models.PredictionStats) string {
	return fmt.Sprintf(
		"You are an AI income advisor for blue-collar workers in India. "+
			"Analyze this worker's data and predict their income for next week.\n\n"+
			"Worker: %s\n"+
			"Skills: %s\n"+
			"Rating: %.1f / 5.0\n"+
			"Price per job: Rs %.0f\n"+
			"Total jobs completed: %d\n"+
			"Jobs this week: %d (Rs %.0f earned)\n"+
			"Jobs last week: %d (Rs %.0f earned)\n"+
			"Average weekly earnings: Rs %.0f\n\n"+
			"Based on this data:\n"+
			"1. Predict their income for next week in Indian Rupees\n"+
			"2. Give 2-3 specific actionable tips to increase their income\n"+
			"3. Keep response simple and encouraging\n\n"+
			"Format your response EXACTLY like this:\n"+
			"PREDICTED: <amount in numbers only>\n"+
			"ANALYSIS: <2-3 sentences about their performance trend>\n"+
			"TIPS: <2-3 specific tips to earn more next week>",
		stats.WorkerName,
		strings.Join(stats.Skills, ","),
		stats.Rating,
		stats.PricePerHour,
		stats.TotalJobsDone,
		stats.JobsThisWeek,
		stats.CurrentWeekEarnings,
		stats.JobsLastWeek,
		stats.LastWeekEarnings,
		stats.AverageWeeklyEarnings,
	)
}
