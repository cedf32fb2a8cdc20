package normalize

// Candidate key tables for every canonical field, in priority order. The
// service labels the same field differently per language and prompt variant;
// supporting a new locale means adding spellings here, not new code paths.

var jobTitleKeys = []string{
	"Job Title",
	"Berufsbezeichnung",
	"Stellenbezeichnung",
	"Jobbezeichnung",
	"Jobtitel",
	"Job Titel",
	"Job_Title",
}

var introductionKeys = []string{
	"Introduction",
	"Einführung",
	"Einleitung",
}

var introductionOfJobKeys = []string{
	"Introduction of the job",
	"Introduction_of_the_job",
	"Introduction_of_the_Job",
	"Job Introduction",
	"Job_Introduction",
	"Einführung des Jobs",
	"Einleitung zur Stelle",
	"Einführung des Berufs",
	"Introduction to the Position",
	"Stelleneinführung",
	"Jobeinführung",
	"Job Einführung",
	"introductionOfJob",
	"Job-Einführung",
	"Job Einleitung",
	"Stellenbeschreibung",
	"Job_Einführung",
	"JobEinführung",
}

var personalAddressKeys = []string{
	"Personal Address",
	"Personal_Address",
	"PersonalAddress",
	"Persönliche Ansprache",
	"Persönliche Adresse",
	"Persönliche_Adresse",
	"personalAddress",
	"PersönlicheAdresse",
}

var tasksKeys = []string{"Tasks", "Aufgaben"}

var qualificationsKeys = []string{"Qualifications", "Qualifikationen"}

var benefitsKeys = []string{"Benefits", "Vorteile", "Leistungen"}

// Default sentinels shown to the UI when a field is missing from the raw
// payload. Scalar Job fields are never left empty.
const (
	defaultJobTitle          = "No job title available"
	defaultHeadline          = "No headline available"
	defaultDescription       = "No description available"
	defaultIntroduction      = "No introduction available"
	defaultIntroductionOfJob = "No job introduction available"
	defaultPersonalAddress   = "No personal address provided"
	defaultCallToAction      = "No call to action provided"
	defaultVoiceScript       = "No voice script provided"
	defaultVoiceTone         = "No tone specified"
	defaultVoiceCTA          = "No Call to Action specified"
	defaultVoiceLocation     = "No location specified"
	defaultVoiceBenefits     = "No benefits specified"
	defaultImageKeyword      = "No image keyword provided"
	defaultWebsite           = "No website provided"
	defaultClosingDate       = "No closing date provided"
	defaultEmail             = "No email provided"
	defaultPhone             = "No phone provided"
	defaultAddress           = "No address provided"
	defaultContactPerson     = "No contact person provided"
)
