package rmv

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
)

type resC struct {
	XMLName xml.Name   `xml:"ResC"`
	Err     *resCError `xml:"Err"`
	SBRes   *sbRes     `xml:"SBRes"`
}

type resCError struct {
	Code  string `xml:"code,attr"`
	Text  string `xml:"text,attr"`
	Level string `xml:"level,attr"`
}

type sbRes struct {
	Err         *resCError      `xml:"Err"`
	SBReq       *sbReq          `xml:"SBReq"`
	JourneyList *journeyListXML `xml:"JourneyList"`
}

type sbReq struct {
	Start  *startXML  `xml:"Start"`
	StartT *startTXML `xml:"StartT"`
}

type startXML struct {
	Station *stationXML `xml:"Station"`
}

type startTXML struct {
	Date string `xml:"date,attr"`
	Time string `xml:"time,attr"`
}

type stationXML struct {
	HafasName  *textXML `xml:"HafasName"`
	ExternalID string   `xml:"ExternalId"`
}

type textXML struct {
	Text string `xml:"Text"`
}

type journeyListXML struct {
	Journeys []journeyXML `xml:"Journey"`
}

type journeyXML struct {
	TrainID    string             `xml:"trainId,attr"`
	Attributes []journeyAttribute `xml:"JourneyAttributeList>JourneyAttribute"`
	MainStop   *basicStopXML      `xml:"MainStop>BasicStop"`
	PassList   []basicStopXML     `xml:"PassList>BasicStop"`
	InfoTexts  []infoTextXML      `xml:"InfoTextList>InfoText"`
}

type journeyAttribute struct {
	Attribute attributeXML `xml:"Attribute"`
}

type attributeXML struct {
	Type     string                `xml:"type,attr"`
	Variants []attributeVariantXML `xml:"AttributeVariant"`
}

type attributeVariantXML struct {
	Type string `xml:"type,attr"`
	Text string `xml:"Text"`
}

type basicStopXML struct {
	Index    string       `xml:"index,attr"`
	Location *locationXML `xml:"Location"`
	Dep      *depXML      `xml:"Dep"`
}

type locationXML struct {
	Station *stationXML `xml:"Station"`
}

type depXML struct {
	Time     string  `xml:"Time"`
	Delay    *string `xml:"Delay"`
	Platform *string `xml:"Platform"`
}

type infoTextXML struct {
	Text     *string `xml:"text,attr"`
	TextLong *string `xml:"textL,attr"`
}

// parseXML decodes a station board response, patching known upstream
// malformations between attempts.
func parseXML(data []byte) (*resC, error) {
	for attempt := 0; attempt < MaxRetries; attempt++ {
		document, err := decodeXML(data)
		if err == nil {
			return document, nil
		}

		var syntaxError *xml.SyntaxError
		if !errors.As(err, &syntaxError) {
			return nil, fmt.Errorf("%w: %s", DataError, err)
		}

		data, err = fixXML(data, syntaxError.Line)
		if err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: xml still malformed after %d attempts", DataError, MaxRetries)
}

func decodeXML(data []byte) (*resC, error) {
	var document resC

	d := xml.NewDecoder(bytes.NewReader(data))
	d.CharsetReader = charset.NewReaderLabel
	if err := d.Decode(&document); err != nil {
		return nil, err
	}

	return &document, nil
}

func fixXML(data []byte, lineNumber int) ([]byte, error) {
	lines := bytes.Split(data, []byte("\n"))
	if lineNumber < 1 || lineNumber > len(lines) {
		return nil, fmt.Errorf("%w: syntax error outside of document on line %d", DataError, lineNumber)
	}

	xmlIssue := string(lines[lineNumber-1])

	for issue, fix := range KnownXMLIssues {
		if strings.Contains(xmlIssue, issue) {
			log.Debug().Int("line", lineNumber).Str("issue", issue).Msg("Fixing known xml issue")

			return bytes.ReplaceAll(data, []byte(issue), []byte(fix)), nil
		}
	}

	log.Debug().Int("line", lineNumber).Msgf("Unknown xml issue in: %s", xmlIssue)

	return nil, fmt.Errorf("%w: unknown xml issue on line %d", DataError, lineNumber)
}
