package feed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSources is the built-in ordered list of govt-job feeds. Order
// matters: items are delivered in source list order within a cycle.
var DefaultSources = []Source{
	{URL: "https://www.employmentnews.gov.in/RSS/CurrentIssue.aspx", Name: "Employment News"},
	{URL: "https://www.sarkariresult.com/rss.xml", Name: "SarkariResult"},
	{URL: "https://www.freejobalert.com/feed/", Name: "FreeJobAlert"},
	{URL: "https://sarkarinaukriblog.com/feed/", Name: "SarkariNaukri"},
	{URL: "https://www.freshersworld.com/rss/government-jobs", Name: "FreshersWorld"},
	{URL: "https://www.naukri.com/rss/jobs-in-government-sector.rss", Name: "Naukri.com"},
	{URL: "https://www.jagranjosh.com/rss/jobs.xml", Name: "Jagran Josh"},
	{URL: "https://aglasem.com/feed/", Name: "AglaSem"},
	{URL: "https://news.careers360.com/rss/jobs", Name: "Careers360"},
	{URL: "https://rojgarsamachar.gov.in/rss.xml", Name: "Rojgar Samachar"},
	{URL: "https://www.ibps.in/feed/", Name: "IBPS"},
	{URL: "https://www.jagranjosh.com/rss/ssc.xml", Name: "SSC Updates"},
	{URL: "https://www.jagranjosh.com/rss/upsc.xml", Name: "UPSC Updates"},
	{URL: "https://www.jagranjosh.com/rss/railway-jobs.xml", Name: "Railway Jobs"},
	{URL: "https://www.jagranjosh.com/rss/bank-jobs.xml", Name: "Bank Jobs"},
	{URL: "https://www.jagranjosh.com/rss/state-govt-jobs.xml", Name: "State Govt Jobs"},
	{URL: "https://www.jagranjosh.com/rss/defence-jobs.xml", Name: "Defence Jobs"},
	{URL: "https://www.jagranjosh.com/rss/teaching-jobs.xml", Name: "Teaching Jobs"},
	{URL: "https://www.jagranjosh.com/rss/results.xml", Name: "Exam Results"},
	{URL: "https://www.jagranjosh.com/rss/admit-card.xml", Name: "Admit Cards"},
}

// LoadSources returns the source list, replaced by the YAML file at path
// when one is configured.
func LoadSources(path string) ([]Source, error) {
	if path == "" {
		return DefaultSources, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var sources []Source
	if err := yaml.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("sources file %s contains no sources", path)
	}

	for i, s := range sources {
		if s.URL == "" || s.Name == "" {
			return nil, fmt.Errorf("sources file %s: entry %d is missing url or name", path, i)
		}
	}

	return sources, nil
}
