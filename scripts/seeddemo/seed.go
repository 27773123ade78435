package main

import (
	"fmt"

	"github.com/folio/internal/db"
	"github.com/folio/internal/service"
)

type demoPost struct {
	title      string
	content    string
	published  bool
	tags       []string
	categories []string
}

var demoPosts = []demoPost{
	{
		title: "Serving Quantized LLMs on a Budget",
		content: "Running large language models in production does not have to mean " +
			"renting the biggest GPU on the menu.\n\n## Quantization first\n\n" +
			"Int8 quantization with CTranslate2 cut our P99 latency from 5s to 3s " +
			"while keeping quality within noise.\n\n```python\n" +
			"converter = ctranslate2.converters.TransformersConverter(model)\n" +
			"converter.convert(output_dir, quantization=\"int8\")\n```\n\n" +
			"The rest is batching discipline and honest load testing.",
		published:  true,
		tags:       []string{"LLM", "MLOps"},
		categories: []string{"Engineering"},
	},
	{
		title: "Hybrid RAG: Vectors Meet Knowledge Graphs",
		content: "Pure vector search answers the easy questions. Multi-hop questions " +
			"need structure.\n\nCombining FAISS retrieval with a knowledge graph " +
			"traversal stage raised answer accuracy on our internal benchmark " +
			"from 61% to 84%.\n\n- Vector search finds candidate passages\n" +
			"- Graph edges connect entities across documents\n" +
			"- A reranker keeps the final context tight",
		published:  true,
		tags:       []string{"RAG", "LLM"},
		categories: []string{"Engineering"},
	},
	{
		title: "Continuous Batching in Practice",
		content: "Moving inference to vLLM with continuous batching took throughput " +
			"from 20 to 80 tokens per second on the same hardware.\n\nThe trick is " +
			"that most of the win comes from scheduling, not kernels.",
		published:  true,
		tags:       []string{"MLOps", "Performance"},
		categories: []string{"Engineering"},
	},
	{
		title: "Why I Keep a Now Page",
		content: "A now page is a public answer to \"what are you focused on?\" " +
			"It forces a monthly review and keeps the site honest.",
		published:  true,
		tags:       []string{"Writing"},
		categories: []string{"Notes"},
	},
	{
		title: "Kubernetes HPA on GPU Metrics",
		content: "Autoscaling inference pods on CPU utilization is a category error. " +
			"We scaled on GPU utilization exported through DCGM and Prometheus, " +
			"and the fleet finally followed real load.",
		published:  true,
		tags:       []string{"MLOps", "Kubernetes"},
		categories: []string{"Engineering"},
	},
	{
		title: "Draft: Notes on OCR Layout Analysis",
		content: "Tesseract gets the characters; layout analysis gets the meaning. " +
			"Rough notes on combining the two for insurance documents.",
		published:  false,
		tags:       []string{"OCR"},
		categories: []string{"Notes"},
	},
}

type demoProject struct {
	title     string
	shortDesc string
	desc      string
	techStack string
	metrics   string
	featured  bool
}

var demoProjects = []demoProject{
	{
		title:     "LumenCipher CRM Orchestration",
		shortDesc: "Insurance CRM orchestration layer with agentic claims processing.",
		desc: "## Overview\n\nAn orchestration layer coordinating LLM agents for " +
			"automated claims processing, secured with JWT/OAuth2 and backed by " +
			"async SQLAlchemy workers.",
		techStack: "Python, FastAPI, PostgreSQL, Redis",
		metrics:   "70% reduction in manual claims triage",
		featured:  true,
	},
	{
		title:     "Hybrid RAG Engine",
		shortDesc: "FAISS vector search fused with knowledge graph traversal.",
		desc: "Retrieval pipeline combining dense vectors with graph hops for " +
			"multi-hop question answering over technical documents.",
		techStack: "Python, FAISS, Neo4j",
		metrics:   "84% answer accuracy on internal benchmark",
		featured:  true,
	},
	{
		title:     "Inference Autoscaler",
		shortDesc: "GPU-metric driven autoscaling for LLM serving on EKS.",
		desc: "Kubernetes HPA wired to DCGM GPU metrics through Prometheus, " +
			"scaling vLLM replicas with real inference load.",
		techStack: "Kubernetes, Prometheus, Grafana",
		metrics:   "4x throughput at the same cost",
		featured:  false,
	},
}

// seedDemoContent fills an empty database with enough content to click
// through every page. Existing content is left alone.
func seedDemoContent() error {
	if err := seedDemoPosts(); err != nil {
		return fmt.Errorf("posts: %w", err)
	}
	if err := seedDemoProjects(); err != nil {
		return fmt.Errorf("projects: %w", err)
	}
	if err := seedDemoComments(); err != nil {
		return fmt.Errorf("comments: %w", err)
	}
	if err := seedDemoSections(); err != nil {
		return fmt.Errorf("sections: %w", err)
	}
	if err := seedDemoResume(); err != nil {
		return fmt.Errorf("resume: %w", err)
	}
	return nil
}

func seedDemoPosts() error {
	var count int64
	if err := db.DB.Model(&db.Post{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	posts := service.NewPostService(db.DB)
	for _, data := range demoPosts {
		_, err := posts.Create(service.PostInput{
			Title:         data.title,
			Content:       data.content,
			Published:     data.published,
			TagNames:      data.tags,
			CategoryNames: data.categories,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func seedDemoProjects() error {
	var count int64
	if err := db.DB.Model(&db.Project{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	projects := service.NewProjectService(db.DB)
	for _, data := range demoProjects {
		_, err := projects.Create(service.ProjectInput{
			Title:            data.title,
			ShortDescription: data.shortDesc,
			Description:      data.desc,
			TechStack:        data.techStack,
			Metrics:          data.metrics,
			Featured:         data.featured,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func seedDemoComments() error {
	var count int64
	if err := db.DB.Model(&db.Comment{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var post db.Post
	if err := db.DB.Where("published = ?", true).First(&post).Error; err != nil {
		return err
	}

	comments := service.NewCommentService(db.DB)
	approved, err := comments.Create(service.CommentInput{
		PostID:     post.ID,
		AuthorName: "Early Reader",
		Content:    "The quantization numbers match what we saw on our fleet. Thanks for writing this up.",
	})
	if err != nil {
		return err
	}
	if err := comments.Approve(approved.ID); err != nil {
		return err
	}

	_, err = comments.Create(service.CommentInput{
		PostID:      post.ID,
		AuthorName:  "Curious Visitor",
		AuthorEmail: "visitor@example.com",
		Content:     "Did you compare against AWQ?",
	})
	return err
}

func seedDemoSections() error {
	sections := service.NewSectionService(db.DB)
	for _, page := range []string{"home", "about", "now", "contact"} {
		if _, err := sections.InitPageSections(page); err != nil {
			return err
		}
	}
	return nil
}

func seedDemoResume() error {
	// Listing seeds the default blocks when the table is empty.
	_, err := service.NewResumeService(db.DB).ListAll()
	return err
}
