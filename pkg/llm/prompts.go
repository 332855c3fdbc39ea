package llm

import (
	"fmt"
	"strings"
)

const maxTextLength = 200

const sentimentSystemPrompt = `You are an expert sentiment analyst specializing in Indian politics.
Analyze texts about politicians and return structured JSON.
Consider:
- Hindi/English mixed content (Hinglish)
- Indian political context and terminology
- Sarcasm and satire common in Indian discourse
- Regional language nuances
- Terms like "ji" (respect), "pappu" (derogatory for Rahul Gandhi), "feku" (derogatory for Modi)`

const intentSystemPrompt = `You are an assistant that helps analyze Indian politicians' public perception.

Understand the user's intent and extract:
1. action: "analyze" (single politician), "compare" (2 politicians), "multi_compare" (3+), "help", or "chat"
2. politician names mentioned

Common politicians: Narendra Modi, Rahul Gandhi, Amit Shah, Arvind Kejriwal, Yogi Adityanath, Mamata Banerjee, KTR (K.T. Rama Rao), Harish Rao, Revanth Reddy, Chandrababu Naidu, Jagan Mohan Reddy, etc.

Respond ONLY with valid JSON:
{
    "action": "analyze" | "compare" | "multi_compare" | "help" | "chat",
    "politicians": ["Name1", "Name2"],
    "response": "Your friendly response"
}

Examples:
- "How is Modi doing?" -> {"action": "analyze", "politicians": ["Narendra Modi"], "response": "Let me analyze Modi's public perception!"}
- "Compare Rahul and Modi" -> {"action": "compare", "politicians": ["Rahul Gandhi", "Narendra Modi"], "response": "Comparing these two leaders!"}
- "KTR vs Harish Rao vs Revanth" -> {"action": "multi_compare", "politicians": ["K.T. Rama Rao", "Harish Rao", "Revanth Reddy"], "response": "Analyzing all three!"}`

const narrativeSystemPrompt = `You are a helpful political analyst. Be balanced and insightful.`

func buildSentimentPrompt(in SentimentInput) string {
	var sb strings.Builder
	for i, text := range in.Texts {
		if len(text) > maxTextLength {
			text = text[:maxTextLength]
		}
		sb.WriteString(fmt.Sprintf("%d. %q\n", i+1, text))
	}

	return fmt.Sprintf(`Analyze the sentiment of these %s texts about Indian politician %q.

TEXTS:
%s
Respond with this exact JSON structure:
{
    "positive_count": <number of positive texts>,
    "negative_count": <number of negative texts>,
    "neutral_count": <number of neutral texts>,
    "overall_sentiment": "positive" | "negative" | "neutral",
    "confidence": <0-100>,
    "key_topics": ["topic1", "topic2", "topic3"],
    "summary": "One sentence summary of overall sentiment"
}

Be accurate and consider Indian political context.`, in.SourceKind, in.Entity, sb.String())
}

func buildNarrativePrompt(userMessage, analysis string) string {
	return fmt.Sprintf(`Based on this likability analysis, respond to the user's question.

Analysis Data:
%s

User's question: %s

Provide a natural, conversational response that:
1. Summarizes key findings with actual numbers
2. Compares if multiple politicians
3. Highlights insights
4. Is friendly and helpful

Keep it concise (2-3 paragraphs).`, analysis, userMessage)
}
