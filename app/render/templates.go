package render

import (
	"fmt"

	"github.com/govtjobs-alert/bot/app/feed"
)

const notAvailable = "Not Available"

func templateExamUpdate(item feed.Item) (string, []Action) {
	title := value(item.Title, "New Exam Notification")
	summary := summaryLine(item, 200)

	d := item.Details
	formDates := value(d.FormDates, notAvailable)
	if d.FormDates == "" && summary != "" {
		formDates = summary
	}

	body := "🚨 ⚠ <b>EXAM UPDATE</b> ⚠ 🚨\n\n" +
		fmt.Sprintf("✨ 📚 <b>%s</b>\n\n", title) +
		fmt.Sprintf("📅 <b>Exam Date:</b> %s\n", value(d.ExamDate, "Not Announced Yet")) +
		fmt.Sprintf("📝 <b>Form Date:</b> %s\n", formDates) +
		fmt.Sprintf("🏛 <b>Conducting Authority:</b> %s\n", value(d.Authority, sourceLine(item))) +
		fmt.Sprintf("🏢 <b>Organizing Institute:</b> %s\n\n", value(d.Institute, sourceLine(item))) +
		fmt.Sprintf("🎯 <b>Eligibility Criteria:</b>\n%s\n\n", value(d.Eligibility, notAvailable)) +
		fmt.Sprintf("🎯 <b>Exam Pattern:</b>\n%s\n\n", value(d.Pattern, notAvailable)) +
		fmt.Sprintf("📖 <b>Syllabus Overview:</b>\n%s\n\n", value(d.Syllabus, notAvailable)) +
		fmt.Sprintf("🧠 <b>Preparation Strategy:</b>\n%s\n\n", value(d.Strategy, notAvailable)) +
		fmt.Sprintf("📊 <b>Previous Year Insights:</b>\n%s\n\n", value(d.Insights, notAvailable)) +
		fmt.Sprintf("🏛 <b>Selection Process:</b>\n%s\n\n", value(d.Selection, notAvailable)) +
		fmt.Sprintf("🎟 <b>Total Seats:</b> %s\n\n", value(d.Seats, notAvailable)) +
		fmt.Sprintf("💰 <b>Salary / Benefits:</b>\n%s\n\n", value(d.Salary, notAvailable)) +
		fmt.Sprintf("🎯 <b>Why Consider This Exam?</b>\n%s\n\n", value(d.WhyExam, notAvailable)) +
		"🚨 <b>Important Alerts:</b>\n" +
		fmt.Sprintf("⚠ Admit Card – %s\n", value(d.AdmitCardStatus, "Not Released Yet")) +
		fmt.Sprintf("⚠ Result – %s\n\n", value(d.ResultStatus, "Not Declared Yet")) +
		"🎂 <b>Age Limit:</b>\n" +
		fmt.Sprintf("Minimum Age: %s\n", value(d.MinAge, notAvailable)) +
		fmt.Sprintf("Maximum Age: %s\n\n", value(d.MaxAge, notAvailable)) +
		fmt.Sprintf("💰 <b>Application Fee:</b>\n%s\n\n", value(d.Fee, notAvailable)) +
		fmt.Sprintf("🎓 <b>Qualification Required:</b>\n%s\n\n", value(d.Qualification, notAvailable)) +
		"👇 <b>Take Action Below</b>"

	actions := []Action{
		{Label: "🚀 Apply Now", URL: item.Link},
		{Label: "📖 Full Details 🔍", URL: item.Link},
	}
	return body, actions
}

func templateAlert(item feed.Item) (string, []Action) {
	body := "⚠️━━━━━━━━━━━━━━━━━━━━━━━━⚠️\n" +
		"         🚨 <b>IMPORTANT ALERT</b> 🚨\n" +
		"⚠️━━━━━━━━━━━━━━━━━━━━━━━━⚠️\n\n" +
		fmt.Sprintf("🔴 <b>%s</b>\n\n", value(item.Title, "Important Alert")) +
		fmt.Sprintf("🏛️ <b>Source:</b> %s\n", sourceLine(item)) +
		fmt.Sprintf("📅 <b>Date:</b> %s\n\n", dateLine(item)) +
		fmt.Sprintf("⏳ <b>Alert Details:</b>\n%s\n\n", summaryLine(item, 250)) +
		"⚠️ <b>LAST DATE APPROACHING!</b>\n" +
		"Don't miss this opportunity. Apply immediately!\n\n" +
		"💪 <i>Your dream govt job is one application away!</i>"

	actions := []Action{
		{Label: "🚀 Apply Now", URL: item.Link},
		{Label: "📖 Full Details 🔍", URL: item.Link},
	}
	return body, actions
}

func templateResult(item feed.Item) (string, []Action) {
	body := "🎉━━━━━━━━━━━━━━━━━━━━━━━━🎉\n" +
		"      ✅ <b>RESULT DECLARED!</b> ✅\n" +
		"🎉━━━━━━━━━━━━━━━━━━━━━━━━🎉\n\n" +
		fmt.Sprintf("🏆 <b>%s</b>\n\n", value(item.Title, "Result Declared")) +
		fmt.Sprintf("🏛️ <b>Source:</b> %s\n", sourceLine(item)) +
		fmt.Sprintf("📅 <b>Date:</b> %s\n\n", dateLine(item)) +
		fmt.Sprintf("📋 <b>Result Info:</b>\n%s\n\n", summaryLine(item, 250)) +
		"─────────────────────────────\n" +
		"👉 Check your result immediately!\n" +
		"📥 Download your scorecard from the official website.\n\n" +
		"🌟 <i>All the best to all candidates!</i>"

	actions := []Action{
		{Label: "✅ Check Your Result", URL: item.Link},
	}
	return body, actions
}

func templateAdmitCard(item feed.Item) (string, []Action) {
	body := "🪪━━━━━━━━━━━━━━━━━━━━━━━━🪪\n" +
		"     🎫 <b>ADMIT CARD RELEASED!</b> 🎫\n" +
		"🪪━━━━━━━━━━━━━━━━━━━━━━━━🪪\n\n" +
		fmt.Sprintf("📋 <b>%s</b>\n\n", value(item.Title, "Admit Card Available")) +
		fmt.Sprintf("🏛️ <b>Source:</b> %s\n", sourceLine(item)) +
		fmt.Sprintf("📅 <b>Date:</b> %s\n\n", dateLine(item)) +
		fmt.Sprintf("📝 <b>Details:</b>\n%s\n\n", summaryLine(item, 250)) +
		"─────────────────────────────\n" +
		"⚠️ Download your admit card <b>NOW</b>!\n" +
		"📸 Carry a printed copy + valid ID to the exam.\n\n" +
		"✨ <i>Best of luck for your exam!</i>"

	actions := []Action{
		{Label: "🔎 More Details", URL: item.Link},
		{Label: "⬇️ Download Card", URL: item.Link},
	}
	return body, actions
}

func templateGeneral(item feed.Item) (string, []Action) {
	body := "📢━━━━━━━━━━━━━━━━━━━━━━━━📢\n" +
		"          📌 <b>UPDATE</b> 📌\n" +
		"📢━━━━━━━━━━━━━━━━━━━━━━━━📢\n\n" +
		fmt.Sprintf("📋 <b>%s</b>\n\n", value(item.Title, "New Update")) +
		fmt.Sprintf("🏛️ <b>Source:</b> %s\n", sourceLine(item)) +
		fmt.Sprintf("📅 <b>Date:</b> %s\n\n", dateLine(item)) +
		fmt.Sprintf("📝 <b>Details:</b>\n%s\n\n", summaryLine(item, 300)) +
		"─────────────────────────────\n" +
		"🔔 <i>Stay updated with latest govt job news!</i>"

	actions := []Action{
		{Label: "🚀 Apply Now", URL: item.Link},
		{Label: "📖 Full Details 🔍", URL: item.Link},
	}
	return body, actions
}
