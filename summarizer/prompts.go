package summarizer

// SystemPrompt tells the backend how to behave. It is identical for every
// provider; strategies decide how it travels.
const SystemPrompt = `You are a helpful assistant that analyzes website content and provides clear, concise summaries.
Focus on the main content and key information, ignoring navigation elements, headers, and footers.
Provide your response in markdown format without wrapping it in code blocks.`

// UserPromptPrefix is prepended to the fetched page text to form the user
// message.
const UserPromptPrefix = `Here are the contents of a website.
Provide a short summary of this website.
If it includes news or announcements, then summarize these too.
`
