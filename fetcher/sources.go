package fetcher

import "ewintr.nl/showreel/model"

// searchQueries is the fixed vocabulary per topic. One query is picked at
// random for each topic search so consecutive passes surface different
// corners of the topic.
var searchQueries = map[model.Topic][]string{
	model.TopicDesign: {
		"figure drawing tutorial",
		"concept art process",
		"anime drawing tutorial",
		"hand drawing techniques",
		"character design sketch",
		"gesture drawing practice",
		"traditional art illustration",
		"pencil sketching tips",
	},
	model.TopicPhotography: {
		"cinematic photography breakdown",
		"landscape photography tips",
		"portrait photography lighting",
		"street photography POV",
		"photo editing walkthrough",
	},
}

// FeaturedChannels are always polled for new uploads, in this order.
var FeaturedChannels = []model.FeaturedChannel{
	{ChannelID: "UCLMkh2PYXpQh52d3m2bzNNA", Topic: model.TopicDesign}, // KeshArt
	{ChannelID: "UCHMoHLNzj_INZCrRNMVKSVA", Topic: model.TopicDesign}, // CanotStopPainting
	{ChannelID: "UCVlbtV-0IzNltDFmSsRxbrQ", Topic: model.TopicDesign}, // JoshArt02
	{ChannelID: "UCn7_Z4iVjVWvkkByrMnNybQ", Topic: model.TopicDesign}, // Kai_Rump
	{ChannelID: "UC0vD2yISVyw99FVEJ49OHWA", Topic: model.TopicDesign}, // hassaneart
	{ChannelID: "UCm5108VByLkHnu4-b-moBLQ", Topic: model.TopicDesign}, // Chommang
	{ChannelID: "UCXfE-XxquyKfDpOBal4wqWg", Topic: model.TopicDesign}, // rosiessketchbook
}
