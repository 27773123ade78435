package service

import (
	"strings"
	"unicode"
)

// SectionDefault is one catalog entry: the built-in title and markdown
// content for a (page, section_key) pair.
type SectionDefault struct {
	Key     string
	Title   string
	Content string
}

// PageDefault is the built-in content for a long-form page slug.
type PageDefault struct {
	Title           string
	MetaDescription string
	Content         string
}

// ResumeDefault is one built-in resume block.
type ResumeDefault struct {
	SectionType string
	Title       string
	Content     string
	SortOrder   int
}

// defaultSections lists the built-in content blocks per page. Slice order
// defines the sort order assigned when a page is first seeded.
var defaultSections = map[string][]SectionDefault{
	"home": {
		{
			Key:   "hero",
			Title: "Hero Introduction",
			Content: `# Hi, I'm Hemanth 👋

I'm an **AI & MLOps Engineer** with 2+ years of experience building high-performance LLM inference engines and distributed RAG pipelines.

Currently working on LLM infrastructure at [EonForge](#), previously at [Zoho Corporation](#).`,
		},
		{
			Key:   "what_i_do",
			Title: "What I Do",
			Content: `## What I do

- Build production LLM systems (vLLM, CTranslate2, LoRA fine-tuning)
- Design RAG pipelines with hybrid search and knowledge graphs
- Optimize inference latency and reduce cloud costs
- Deploy scalable AI microservices on Kubernetes`,
		},
		{
			Key:   "cta",
			Title: "Call to Action",
			Content: `## Get in touch

Looking for an AI/ML engineer? [Send me a message](/contact) or email me at [ihemanth.2001@gmail.com](mailto:ihemanth.2001@gmail.com).`,
		},
	},
	"about": {
		{
			Key:     "intro",
			Title:   "Introduction",
			Content: `I'm **Hemanth Irivichetty**, a product-focused AI Engineer with 2+ years of experience architecting high-performance LLM inference engines and distributed RAG pipelines.`,
		},
		{
			Key:   "specialization",
			Title: "What I Specialize In",
			Content: `## What I specialize in

- **LLM Inference Optimization:** vLLM, CTranslate2, PagedAttention, quantization (Int8/AWQ)
- **RAG Systems:** Hybrid search (Vector + Knowledge Graph), FAISS, cross-encoder re-ranking
- **MLOps:** Kubernetes (EKS), Docker, CI/CD, Prometheus/Grafana monitoring
- **Fine-tuning:** LoRA/QLoRA, PEFT techniques for domain adaptation`,
		},
		{
			Key:   "experience",
			Title: "Experience Summary",
			Content: `## Experience

Currently at **EonForge (Logos Technologies LLC)** as an LLM & Vision Infrastructure Engineer, where I design RAG pipelines and OCR systems for insurance automation.

Previously at **Zoho Corporation** for 2+ years, where I:
- Increased LLM inference throughput from 20 to 80 tokens/sec (4x improvement)
- Reduced P99 latency by 40% and inference costs by 60%
- Led migration from RNN/LSTM to Transformer-based architectures`,
		},
		{
			Key:   "education",
			Title: "Education",
			Content: `## Education

B.Tech in Computer Science & Engineering from Sri Venkateswara College of Engineering (CGPA: 7.72)`,
		},
		{
			Key:   "looking_for",
			Title: "Currently Looking For",
			Content: `## Currently

Looking for opportunities at MAANG companies and interesting freelance projects. If you're working on challenging AI/ML problems, [let's talk](/contact).`,
		},
	},
	"now": {
		{
			Key:     "intro",
			Title:   "Introduction",
			Content: `This is a ["now page"](https://nownownow.com/about) – what I'm currently focused on.`,
		},
		{
			Key:   "working_on",
			Title: "Working On",
			Content: `## Working on

- Building RAG pipelines with hybrid search at EonForge
- OCR and document processing systems for insurance automation
- Exploring multi-agent architectures`,
		},
		{
			Key:   "learning",
			Title: "Learning",
			Content: `## Learning

- Advanced prompt engineering techniques
- Rust for systems programming
- Building in public`,
		},
		{
			Key:   "reading",
			Title: "Reading",
			Content: `## Reading

- *Designing Machine Learning Systems* by Chip Huyen
- LLM research papers (Llama, Qwen series)`,
		},
		{
			Key:   "goals",
			Title: "Goals",
			Content: `## Goals for 2025

- Land a role at a MAANG company
- Write more technical blog posts
- Contribute to open-source LLM projects`,
		},
	},
	"resume": {
		{
			Key:   "header",
			Title: "Header",
			Content: `# Hemanth Irivichetty
**AI & MLOps Engineer**

[ihemanth.2001@gmail.com](mailto:ihemanth.2001@gmail.com) · +91 8500363606 · [LinkedIn](https://www.linkedin.com/in/hemanth-irivichetty/) · [GitHub](https://github.com/Hemanth-stack)`,
		},
		{
			Key:   "summary",
			Title: "Professional Summary",
			Content: `## Professional Summary

Product-focused AI Engineer with 2+ years of experience architecting high-performance LLM inference engines and distributed RAG pipelines. Expert in reducing production latency by 40% and inference costs by 60% through advanced quantization and memory optimization. Proven track record of migrating legacy NLP systems to Transformer-based architectures and deploying scalable, secure AI microservices on Kubernetes (EKS).`,
		},
		{
			Key:   "skills",
			Title: "Technical Skills",
			Content: `## Technical Skills

- **GenAI & LLM Inference:** vLLM, CTranslate2, PagedAttention, Dynamic Batching, Quantization (Int8/AWQ), LoRA/QLoRA Fine-tuning
- **RAG & Retrieval:** Hybrid Search (Vector + Knowledge Graph), FAISS, Cross-Encoders (BGE/Cohere), RAGAS Evaluation
- **Models:** LLaMA 3.1, Qwen 2.5, FLAN-T5, LSTM, RNN
- **MLOps & Cloud:** Kubernetes (EKS), Docker, AWS (EC2, S3), CI/CD (GitHub Actions), Prometheus, Grafana
- **Backend Engineering:** Python (AsyncIO), FastAPI, Celery, SQLAlchemy (Async), Hybrid Encryption (RSA + Fernet), JWT/OAuth2
- **Vision & OCR:** Tesseract OCR, Document Layout Analysis, Object Detection (YOLO)`,
		},
		{
			Key:   "exp_eonforge",
			Title: "EonForge Experience",
			Content: `## EonForge (Logos Technologies LLC)
**LLM & Vision Infrastructure Engineer** · Dubai, UAE / Remote · July 2025 – Present

- Designed Hybrid RAG system combining FAISS vector search with Knowledge Graph traversal for multi-hop reasoning
- Built end-to-end document processing pipeline using Tesseract OCR with custom layout analysis
- Architected orchestration layer for "LumenCipher" Insurance CRM with JWT/OAuth2 security
- Developed intelligent agents for automated claims processing using SQLAlchemy (Async)`,
		},
		{
			Key:   "exp_zoho_mts",
			Title: "Zoho MTS Experience",
			Content: `## Zoho Corporation
**Member Technical Staff (NLP & AI)** · Chennai, TN · June 2023 – June 2025

- **4x Throughput:** Migrated to vLLM with Continuous Batching, increasing throughput from 20 to 80 tokens/sec
- **40% Latency Reduction:** Implemented Int8 Quantization using CTranslate2, reducing P99 from 5s to 3s
- **60% Cost Reduction:** Achieved through CPU offloading and optimized GEMM kernels
- Fine-tuned FLAN-T5 and LLaMA 3.1 using LoRA/QLoRA for specialized tasks
- Deployed on Kubernetes (EKS) with HPA based on GPU metrics and Prometheus/Grafana monitoring`,
		},
		{
			Key:   "exp_zoho_trainee",
			Title: "Zoho Trainee Experience",
			Content: `## Zoho Corporation
**Project Trainee (AI/ML)** · Chennai, TN · Oct 2022 – May 2023

- Led migration from RNN/LSTM to Transformer-based pipelines
- Built data migration pipelines using Zoho Catalyst
- Enforced code quality with Poetry and Pytest`,
		},
		{
			Key:   "education",
			Title: "Education",
			Content: `## Education

**B.Tech in Computer Science & Engineering**
Sri Venkateswara College of Engineering · CGPA: 7.72`,
		},
	},
	"contact": {
		{
			Key:   "intro",
			Title: "Introduction",
			Content: `Have a project in mind? Looking for an AI/ML engineer? Or just want to say hello?

You can reach me at [ihemanth.2001@gmail.com](mailto:ihemanth.2001@gmail.com) or use the form below.`,
		},
		{
			Key:   "other_ways",
			Title: "Other Ways to Connect",
			Content: `## Other ways to connect

- **Email:** [ihemanth.2001@gmail.com](mailto:ihemanth.2001@gmail.com)
- **LinkedIn:** [linkedin.com/in/hemanth-irivichetty](https://www.linkedin.com/in/hemanth-irivichetty/)
- **GitHub:** [github.com/Hemanth-stack](https://github.com/Hemanth-stack)
- **Phone:** +91 8500363606`,
		},
	},
}

// defaultSettingOrder fixes the display order of the settings form.
var defaultSettingOrder = []string{
	"site_name",
	"site_tagline",
	"site_email",
	"site_phone",
	"linkedin_url",
	"github_url",
	"home_greeting",
	"home_intro",
	"home_current",
	"home_what_i_do",
	"home_cta",
	"footer_text",
}

var defaultSettings = map[string]string{
	"site_name":     "Hemanth Irivichetty",
	"site_tagline":  "AI & MLOps Engineer",
	"site_email":    "ihemanth.2001@gmail.com",
	"site_phone":    "+91 8500363606",
	"linkedin_url":  "https://www.linkedin.com/in/hemanth-irivichetty/",
	"github_url":    "https://github.com/Hemanth-stack",
	"home_greeting": "Hi, I'm Hemanth 👋",
	"home_intro":    "I'm an **AI & MLOps Engineer** with 2+ years of experience building high-performance LLM inference engines and distributed RAG pipelines.",
	"home_current":  "Currently working on LLM infrastructure at [EonForge](https://eonforge.com), previously at [Zoho Corporation](https://zoho.com).",
	"home_what_i_do": `- Build production LLM systems (vLLM, CTranslate2, LoRA fine-tuning)
- Design RAG pipelines with hybrid search and knowledge graphs
- Optimize inference latency and reduce cloud costs
- Deploy scalable AI microservices on Kubernetes`,
	"home_cta":    "Looking for an AI/ML engineer? [Send me a message](/contact) or email me at [ihemanth.2001@gmail.com](mailto:ihemanth.2001@gmail.com).",
	"footer_text": "",
}

var defaultPages = map[string]PageDefault{
	"about": {
		Title:           "About Me",
		MetaDescription: "About Hemanth Irivichetty, AI & MLOps Engineer with expertise in LLM systems and distributed pipelines.",
		Content: `I'm **Hemanth Irivichetty**, a product-focused AI Engineer with 2+ years of experience architecting high-performance LLM inference engines and distributed RAG pipelines.

## What I specialize in

- **LLM Inference Optimization:** vLLM, CTranslate2, PagedAttention, quantization (Int8/AWQ)
- **RAG Systems:** Hybrid search (Vector + Knowledge Graph), FAISS, cross-encoder re-ranking
- **MLOps:** Kubernetes (EKS), Docker, CI/CD, Prometheus/Grafana monitoring
- **Fine-tuning:** LoRA/QLoRA, PEFT techniques for domain adaptation

## Experience

Currently at **EonForge (Logos Technologies LLC)** as an LLM & Vision Infrastructure Engineer, where I design RAG pipelines and OCR systems for insurance automation.

Previously at **Zoho Corporation** for 2+ years, where I:
- Increased LLM inference throughput from 20 to 80 tokens/sec (4x improvement)
- Reduced P99 latency by 40% and inference costs by 60%
- Led migration from RNN/LSTM to Transformer-based architectures

## Education

B.Tech in Computer Science & Engineering from Sri Venkateswara College of Engineering (CGPA: 7.72)

## Currently

Looking for opportunities at MAANG companies and interesting freelance projects. If you're working on challenging AI/ML problems, [let's talk](/contact).`,
	},
	"now": {
		Title:           "Now",
		MetaDescription: "What Hemanth Irivichetty is currently working on and learning.",
		Content: `This is a ["now page"](https://nownownow.com/about) – what I'm currently focused on.

## Working on

- Building RAG pipelines with hybrid search at EonForge
- OCR and document processing systems for insurance automation
- Exploring multi-agent architectures

## Learning

- Advanced prompt engineering techniques
- Rust for systems programming
- Building in public

## Reading

- *Designing Machine Learning Systems* by Chip Huyen
- LLM research papers (Llama, Qwen series)

## Goals for 2025

- Land a role at a MAANG company
- Write more technical blog posts
- Contribute to open-source LLM projects`,
	},
}

var defaultResumeSections = []ResumeDefault{
	{
		SectionType: "header",
		Title:       "Hemanth Irivichetty",
		Content: `{
    "tagline": "AI & MLOps Engineer",
    "email": "ihemanth.2001@gmail.com",
    "phone": "+91 8500363606",
    "linkedin": "https://www.linkedin.com/in/hemanth-irivichetty/",
    "github": "https://github.com/Hemanth-stack"
}`,
		SortOrder: 1,
	},
	{
		SectionType: "summary",
		Title:       "Professional Summary",
		Content:     "Product-focused AI Engineer with 2+ years of experience architecting high-performance LLM inference engines and distributed RAG pipelines. Expert in reducing production latency by 40% and inference costs by 60% through advanced quantization and memory optimization. Proven track record of migrating legacy NLP systems to Transformer-based architectures and deploying scalable, secure AI microservices on Kubernetes (EKS).",
		SortOrder:   2,
	},
	{
		SectionType: "skills",
		Title:       "Technical Skills",
		Content: `- **GenAI & LLM Inference:** vLLM, CTranslate2, PagedAttention, Dynamic Batching, Quantization (Int8/AWQ), LoRA/QLoRA Fine-tuning
- **RAG & Retrieval:** Hybrid Search (Vector + Knowledge Graph), FAISS, Cross-Encoders (BGE/Cohere), RAGAS Evaluation
- **Models:** LLaMA 3.1, Qwen 2.5, FLAN-T5, LSTM, RNN
- **MLOps & Cloud:** Kubernetes (EKS), Docker, AWS (EC2, S3), CI/CD (GitHub Actions), Prometheus, Grafana
- **Backend Engineering:** Python (AsyncIO), FastAPI, Celery, SQLAlchemy (Async), Hybrid Encryption, JWT/OAuth2
- **Vision & OCR:** Tesseract OCR, Document Layout Analysis, Object Detection (YOLO)`,
		SortOrder: 3,
	},
	{
		SectionType: "experience",
		Title:       "LLM & Vision Infrastructure Engineer",
		Content: `{
    "company": "EonForge (Logos Technologies LLC)",
    "location": "Dubai, UAE / Remote",
    "period": "July 2025 – Present",
    "bullets": [
        "Designed Hybrid RAG system combining FAISS vector search with Knowledge Graph traversal for multi-hop reasoning",
        "Built end-to-end document processing pipeline using Tesseract OCR with custom layout analysis",
        "Architected orchestration layer for 'LumenCipher' Insurance CRM with JWT/OAuth2 security",
        "Developed intelligent agents for automated claims processing using SQLAlchemy (Async)"
    ]
}`,
		SortOrder: 4,
	},
	{
		SectionType: "experience",
		Title:       "Member Technical Staff (NLP & AI)",
		Content: `{
    "company": "Zoho Corporation",
    "location": "Chennai, TN",
    "period": "June 2023 – June 2025",
    "bullets": [
        "**4x Throughput:** Migrated to vLLM with Continuous Batching, increasing throughput from 20 to 80 tokens/sec",
        "**40% Latency Reduction:** Implemented Int8 Quantization using CTranslate2, reducing P99 from 5s to 3s",
        "**60% Cost Reduction:** Achieved through CPU offloading and optimized GEMM kernels",
        "Fine-tuned FLAN-T5 and LLaMA 3.1 using LoRA/QLoRA for specialized tasks",
        "Deployed on Kubernetes (EKS) with HPA based on GPU metrics and Prometheus/Grafana monitoring"
    ]
}`,
		SortOrder: 5,
	},
	{
		SectionType: "experience",
		Title:       "Project Trainee (AI/ML)",
		Content: `{
    "company": "Zoho Corporation",
    "location": "Chennai, TN",
    "period": "Oct 2022 – May 2023",
    "bullets": [
        "Led migration from RNN/LSTM to Transformer-based pipelines",
        "Built data migration pipelines using Zoho Catalyst",
        "Enforced code quality with Poetry and Pytest"
    ]
}`,
		SortOrder: 6,
	},
	{
		SectionType: "education",
		Title:       "Education",
		Content: `{
    "degree": "B.Tech in Computer Science & Engineering",
    "institution": "Sri Venkateswara College of Engineering",
    "cgpa": "7.72"
}`,
		SortOrder: 7,
	},
}

// lookupSectionDefault returns the catalog entry for (page, key). Misses
// come back as an empty entry so callers can fall through to generated
// titles and empty content.
func lookupSectionDefault(page, key string) SectionDefault {
	for _, def := range defaultSections[page] {
		if def.Key == key {
			return def
		}
	}
	return SectionDefault{Key: key}
}

// defaultTitle turns a section key into a readable title: underscores
// become spaces and every word is title-cased.
func defaultTitle(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		words[i] = string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
	}
	return strings.Join(words, " ")
}

// DefaultSettingKeys returns the settings form keys in display order.
func DefaultSettingKeys() []string {
	keys := make([]string, len(defaultSettingOrder))
	copy(keys, defaultSettingOrder)
	return keys
}

// HasDefaultSections reports whether the catalog defines blocks for page.
func HasDefaultSections(page string) bool {
	return len(defaultSections[page]) > 0
}

// DefaultPages maps the built-in page slugs to their titles, for admin
// listings that show default pages before they are first edited.
func DefaultPages() map[string]string {
	pages := make(map[string]string, len(defaultPages))
	for slug, def := range defaultPages {
		pages[slug] = def.Title
	}
	return pages
}
