// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

// SampleText is a ready-made passage for trying the generator.
const SampleText = `
Artificial Intelligence (AI) is revolutionizing many aspects of modern life.
Machine learning algorithms can analyze vast amounts of data to identify patterns
and make predictions. Deep learning, a subset of machine learning, uses neural
networks with multiple layers to process information. These technologies have
applications in healthcare, finance, transportation, and education. However,
AI also raises important ethical questions about privacy, job displacement,
and algorithmic bias. As AI systems become more sophisticated, it's crucial
to develop frameworks for responsible AI development and deployment.
`
