package llm

import (
	"fmt"
	"strings"
)

// Summary types understood by BuildSummaryPrompt. Unknown values fall back to
// SummaryTypeGeneral.
const (
	SummaryTypeGeneral   = "general"
	SummaryTypeExecutive = "executive"
	SummaryTypeFinancial = "financial"
	SummaryTypeLegal     = "legal"
	SummaryTypeTrade     = "trade"
)

const summaryPreamble = `คุณได้รับเอกสารชื่อ "%s" กรุณาวิเคราะห์และสรุปเนื้อหาต่อไปนี้:

--- เนื้อหาเอกสาร ---
%s
--- จบเนื้อหา ---

`

const instructionsGeneral = `กรุณาสรุป:
1. ภาพรวมของเอกสาร
2. ประเด็นสำคัญ
3. รายละเอียดที่ควรทราบ
4. ข้อสรุปและข้อเสนอแนะ`

const instructionsExecutive = `กรุณาสรุปแบบ Executive Summary:
1. สรุปภาพรวม (1-2 ประโยค)
2. ประเด็นสำคัญ 3-5 ข้อ
3. ข้อเสนอแนะหรือ Action Items
4. สิ่งที่ต้องระวัง/ความเสี่ยง (ถ้ามี)`

const instructionsFinancial = `กรุณาวิเคราะห์ด้านการเงิน:
1. สรุปตัวเลขทางการเงินที่สำคัญ
2. แนวโน้มและการเปลี่ยนแปลง
3. ความเสี่ยงทางการเงิน
4. ข้อเสนอแนะ`

const instructionsLegal = `กรุณาวิเคราะห์ด้านกฎหมาย:
1. สรุปข้อกำหนดสำคัญ
2. ภาระผูกพันของแต่ละฝ่าย
3. ข้อควรระวังทางกฎหมาย
4. วันที่และเงื่อนไขสำคัญ`

const instructionsTrade = `กรุณาวิเคราะห์เอกสาร Trade Finance:
1. ประเภทธุรกรรม (L/C, T/R, Invoice, etc.)
2. คู่สัญญาและบทบาท
3. มูลค่าและเงื่อนไขการชำระเงิน
4. เอกสารที่เกี่ยวข้อง
5. ความเสี่ยงและข้อควรระวัง`

// NormalizeSummaryType lowercases the type and maps unknown values to general.
func NormalizeSummaryType(summaryType string) string {
	switch strings.ToLower(strings.TrimSpace(summaryType)) {
	case SummaryTypeExecutive:
		return SummaryTypeExecutive
	case SummaryTypeFinancial:
		return SummaryTypeFinancial
	case SummaryTypeLegal:
		return SummaryTypeLegal
	case SummaryTypeTrade:
		return SummaryTypeTrade
	default:
		return SummaryTypeGeneral
	}
}

// BuildSummaryPrompt assembles the summarization prompt for a document.
func BuildSummaryPrompt(content, fileName, summaryType string) string {
	base := fmt.Sprintf(summaryPreamble, fileName, content)

	switch NormalizeSummaryType(summaryType) {
	case SummaryTypeExecutive:
		return base + instructionsExecutive
	case SummaryTypeFinancial:
		return base + instructionsFinancial
	case SummaryTypeLegal:
		return base + instructionsLegal
	case SummaryTypeTrade:
		return base + instructionsTrade
	default:
		return base + instructionsGeneral
	}
}

// ComposeQuestion joins optional context and a question into one prompt.
// Without context the question passes through untouched.
func ComposeQuestion(question, contextText string) string {
	if strings.TrimSpace(contextText) == "" {
		return question
	}
	return fmt.Sprintf("%s\n\nคำถาม: %s", contextText, question)
}
