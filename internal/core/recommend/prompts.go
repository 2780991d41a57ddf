package recommend

// Prompt templates used when the configuration leaves them empty.
// Initial is formatted with (data, question), Revisit with (data, question,
// initial recommendation).
const (
	DefaultInitialPrompt = `You are a sales analyst. Using only the customer data below, answer the question with a short recommendation of which customers to prioritize.

Customer data:
%s

Question: %s

Respond with a JSON object and nothing else:
{"summary": "<at most 80 words naming the customers you recommend>", "bullets": ["<customer name>: <one-line reason>"]}`

	DefaultRevisitPrompt = `You are a sales analyst reviewing your own earlier answer. Re-check it against the customer data below.

Customer data:
%s

Question: %s

Earlier recommendation:
%s

Keep the customers that still fit and say explicitly which ones you removed or added.
Respond with a JSON object and nothing else:
{"summary": "<at most 80 words>", "bullets": ["<customer name>: <one-line reason>"]}`
)
